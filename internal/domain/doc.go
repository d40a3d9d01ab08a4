// Package domain contains the data model of the emoji catalog: raw dataset
// records, transient pipeline entries, and the persisted catalog.
package domain
