// Package models defines the core domain models for the invoice dashboard.
//
// All models here are read-only projections of the underlying database.
// They are constructed per request by the storage layer and discarded once
// the caller has consumed them; nothing in this package is persisted back.
//
// # Money representation
//
// Every monetary field holds an integer amount in minor currency units
// (cents). The storage layer never converts amounts to major units; callers
// that need a decimal display value convert once at the presentation
// boundary via the money package.
package models
