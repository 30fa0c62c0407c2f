// Package controller mediates between a presentation layer and the contact
// registry.
//
// A presentation layer implements Presenter and turns user input into
// Intents for a Dispatcher. Editor covers the single-contact create/modify
// flow; Bulk covers selection-based deletion, sorting, import and export.
// Every failure is reported through Presenter.ShowError and also returned,
// so callers can react without parsing messages. None of them is fatal.
package controller
