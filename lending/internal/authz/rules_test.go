package authz_test

import (
	"testing"

	"github.com/Astemirdum/book-network/lending/internal/authz"
	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/stretchr/testify/require"
)

const (
	ownerID    = 1
	borrowerID = 2
)

var (
	owner    = model.Identity{ID: ownerID}
	borrower = model.Identity{ID: borrowerID}
)

func book(archived, shareable bool) model.Book {
	return model.Book{ID: 10, OwnerID: ownerID, Archived: archived, Shareable: shareable}
}

type rule func(model.Identity, model.Book) error

func TestRules_UnavailableBookIsNeverPermitted(t *testing.T) {
	t.Parallel()
	rules := map[string]rule{
		"borrow":   authz.CanBorrow,
		"return":   authz.CanReturn,
		"approve":  authz.CanApprove,
		"feedback": authz.CanFeedback,
	}
	books := map[string]model.Book{
		"archived":             book(true, true),
		"not shareable":        book(false, false),
		"archived unshareable": book(true, false),
	}
	for ruleName, r := range rules {
		for bookName, b := range books {
			for _, actor := range []model.Identity{owner, borrower} {
				err := r(actor, b)
				require.ErrorIs(t, err, errs.ErrNotPermitted, "%s %s actor=%d", ruleName, bookName, actor.ID)
			}
		}
	}
}

func TestRules_Ownership(t *testing.T) {
	t.Parallel()
	available := book(false, true)
	tests := []struct {
		name    string
		rule    rule
		actor   model.Identity
		wantErr bool
		msg     string
	}{
		{name: "borrow by owner", rule: authz.CanBorrow, actor: owner, wantErr: true, msg: "you can't borrow your own book"},
		{name: "borrow by other", rule: authz.CanBorrow, actor: borrower},
		{name: "return by owner", rule: authz.CanReturn, actor: owner, wantErr: true, msg: "you can't borrow or return your own book"},
		{name: "return by other", rule: authz.CanReturn, actor: borrower},
		{name: "approve by owner", rule: authz.CanApprove, actor: owner},
		{name: "approve by other", rule: authz.CanApprove, actor: borrower, wantErr: true, msg: "you can only approve returns of your own books"},
		{name: "feedback by owner", rule: authz.CanFeedback, actor: owner, wantErr: true, msg: "you can't add feedback on your own book"},
		{name: "feedback by other", rule: authz.CanFeedback, actor: borrower},
		{name: "manage by owner", rule: authz.CanManage, actor: owner},
		{name: "manage by other", rule: authz.CanManage, actor: borrower, wantErr: true, msg: "you can't update others' books"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.rule(tt.actor, available)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrNotPermitted)
			require.EqualError(t, err, tt.msg)
		})
	}
}

func TestCanManage_IgnoresFlags(t *testing.T) {
	t.Parallel()
	require.NoError(t, authz.CanManage(owner, book(true, false)))
}
