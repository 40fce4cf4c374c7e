// Package models contains GORM persistence models that map to database tables.
// They are kept apart from domain entities so the domain stays free of ORM tags;
// each model converts to and from its entity with ToDomain and XModelFromDomain.
package models
