// Package models holds the GORM row types backing the repositories. Domain
// entities stay free of ORM tags; each model carries the table mapping and a
// pair of conversion helpers to and from its entity. Repositories only ever
// touch the database through these models.
package models
