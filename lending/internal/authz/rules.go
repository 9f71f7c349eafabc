// Package authz holds the lending authorization rules. Every rule is a pure
// function of the actor and the book; a nil result means permitted.
package authz

import (
	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
)

func available(book model.Book) bool {
	return !book.Archived && book.Shareable
}

func isOwner(actor model.Identity, book model.Book) bool {
	return actor.ID == book.OwnerID
}

func CanBorrow(actor model.Identity, book model.Book) error {
	if !available(book) {
		return errs.NotPermitted("you can't borrow this book since it's archived or not shareable")
	}
	if isOwner(actor, book) {
		return errs.NotPermitted("you can't borrow your own book")
	}
	return nil
}

// CanReturn mirrors CanBorrow: a book archived or unshared mid-loan cannot be returned.
func CanReturn(actor model.Identity, book model.Book) error {
	if !available(book) {
		return errs.NotPermitted("you can't borrow or return this book since it's archived or not shareable")
	}
	if isOwner(actor, book) {
		return errs.NotPermitted("you can't borrow or return your own book")
	}
	return nil
}

func CanApprove(actor model.Identity, book model.Book) error {
	if !available(book) {
		return errs.NotPermitted("you can't approve this book since it's archived or not shareable")
	}
	if !isOwner(actor, book) {
		return errs.NotPermitted("you can only approve returns of your own books")
	}
	return nil
}

// CanFeedback does not look at borrow history: any non-owner may review.
func CanFeedback(actor model.Identity, book model.Book) error {
	if !available(book) {
		return errs.NotPermitted("you can't add feedback on this book since it's archived or not shareable")
	}
	if isOwner(actor, book) {
		return errs.NotPermitted("you can't add feedback on your own book")
	}
	return nil
}

func CanManage(actor model.Identity, book model.Book) error {
	if !isOwner(actor, book) {
		return errs.NotPermitted("you can't update others' books")
	}
	return nil
}
