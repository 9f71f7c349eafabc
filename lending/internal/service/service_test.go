package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/Astemirdum/book-network/lending/internal/queue"
	"github.com/Astemirdum/book-network/lending/internal/service"
	"github.com/Astemirdum/book-network/lending/internal/service/mocks"
	"github.com/Astemirdum/book-network/pkg/kafka"
)

var (
	owner    = model.Identity{ID: 1, FullName: "Owner", Roles: []string{"USER"}}
	borrower = model.Identity{ID: 2, FullName: "Borrower", Roles: []string{"USER"}}
	other    = model.Identity{ID: 3, FullName: "Other", Roles: []string{"USER"}}

	firstPage = model.Pageable{Page: model.DefaultPage, Size: model.DefaultSize}
)

func newService(repo *memRepo) *service.Service {
	return service.NewService(repo, queue.NewNoopEnqueuer(), zap.NewNop())
}

func addBook(t *testing.T, svc *service.Service, shareable bool) int64 {
	t.Helper()
	id, err := svc.CreateBook(context.Background(), owner, model.CreateBookRequest{
		Title:     "The Left Hand of Darkness",
		Author:    "Ursula K. Le Guin",
		ISBN:      "978-0441478125",
		Synopsis:  "Gethen",
		Shareable: shareable,
	})
	require.NoError(t, err)
	return id
}

func TestService_UnavailableBookBlocksEveryTransition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		prepare func(t *testing.T, svc *service.Service, id int64)
	}{
		{
			name:    "not shareable",
			prepare: func(*testing.T, *service.Service, int64) {},
		},
		{
			name: "archived",
			prepare: func(t *testing.T, svc *service.Service, id int64) {
				_, err := svc.ToggleShareable(ctx, owner, id)
				require.NoError(t, err)
				_, err = svc.ToggleArchived(ctx, owner, id)
				require.NoError(t, err)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newService(newMemRepo())
			id := addBook(t, svc, false)
			tt.prepare(t, svc, id)

			for _, actor := range []model.Identity{owner, borrower} {
				_, err := svc.BorrowBook(ctx, actor, id)
				assert.ErrorIs(t, err, errs.ErrNotPermitted)
				_, err = svc.ReturnBook(ctx, actor, id)
				assert.ErrorIs(t, err, errs.ErrNotPermitted)
				_, err = svc.ApproveReturn(ctx, actor, id)
				assert.ErrorIs(t, err, errs.ErrNotPermitted)
				_, err = svc.AddFeedback(ctx, actor, id, 4, "good")
				assert.ErrorIs(t, err, errs.ErrNotPermitted)
			}
		})
	}
}

func TestService_OwnerRules(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(newMemRepo())
	id := addBook(t, svc, true)

	_, err := svc.BorrowBook(ctx, owner, id)
	require.ErrorIs(t, err, errs.ErrNotPermitted)
	require.EqualError(t, err, "you can't borrow your own book")

	_, err = svc.AddFeedback(ctx, owner, id, 5, "mine")
	require.ErrorIs(t, err, errs.ErrNotPermitted)

	_, err = svc.BorrowBook(ctx, borrower, id)
	require.NoError(t, err)
	_, err = svc.ReturnBook(ctx, borrower, id)
	require.NoError(t, err)

	_, err = svc.ApproveReturn(ctx, borrower, id)
	require.ErrorIs(t, err, errs.ErrNotPermitted)

	_, err = svc.ApproveReturn(ctx, owner, id)
	require.NoError(t, err)
}

func TestService_BorrowUniqueness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(newMemRepo())
	id := addBook(t, svc, true)

	first, err := svc.BorrowBook(ctx, borrower, id)
	require.NoError(t, err)

	_, err = svc.BorrowBook(ctx, borrower, id)
	require.ErrorIs(t, err, errs.ErrAlreadyBorrowed)

	// another actor has an independent loan
	_, err = svc.BorrowBook(ctx, other, id)
	require.NoError(t, err)

	_, err = svc.ReturnBook(ctx, borrower, id)
	require.NoError(t, err)
	_, err = svc.ApproveReturn(ctx, owner, id)
	require.NoError(t, err)

	again, err := svc.BorrowBook(ctx, borrower, id)
	require.NoError(t, err)
	require.NotEqual(t, first, again)
}

func TestService_StateOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(newMemRepo())
	id := addBook(t, svc, true)

	_, err := svc.ReturnBook(ctx, borrower, id)
	require.ErrorIs(t, err, errs.ErrNotPermitted)

	_, err = svc.BorrowBook(ctx, borrower, id)
	require.NoError(t, err)

	_, err = svc.ApproveReturn(ctx, owner, id)
	require.ErrorIs(t, err, errs.ErrNotPermitted)
	require.EqualError(t, err, "the book is not returned yet. You cannot approve its return")

	_, err = svc.ReturnBook(ctx, borrower, id)
	require.NoError(t, err)

	_, err = svc.ReturnBook(ctx, borrower, id)
	require.ErrorIs(t, err, errs.ErrNotPermitted)
	require.EqualError(t, err, "you did not borrow this book")

	_, err = svc.ApproveReturn(ctx, owner, id)
	require.NoError(t, err)
	_, err = svc.ApproveReturn(ctx, owner, id)
	require.ErrorIs(t, err, errs.ErrNotPermitted)
}

func TestService_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newMemRepo()
	svc := newService(repo)
	id := addBook(t, svc, true)

	recordID, err := svc.BorrowBook(ctx, borrower, id)
	require.NoError(t, err)
	rec, err := repo.FindUnresolvedRecord(ctx, id, borrower.ID)
	require.NoError(t, err)
	require.Equal(t, recordID, rec.ID)
	require.False(t, rec.Returned)
	require.False(t, rec.ReturnedApprove)
	require.Equal(t, borrower.ID, rec.CreatedBy)

	returnedID, err := svc.ReturnBook(ctx, borrower, id)
	require.NoError(t, err)
	require.Equal(t, recordID, returnedID)

	approvedID, err := svc.ApproveReturn(ctx, owner, id)
	require.NoError(t, err)
	require.Equal(t, recordID, approvedID)

	borrowed, err := svc.ListBorrowedBooks(ctx, borrower, firstPage)
	require.NoError(t, err)
	require.Len(t, borrowed.Content, 1)
	require.Equal(t, recordID, borrowed.Content[0].RecordID)
	require.True(t, borrowed.Content[0].Returned)
	require.True(t, borrowed.Content[0].ReturnedApproved)

	returned, err := svc.ListReturnedBooks(ctx, owner, firstPage)
	require.NoError(t, err)
	require.Equal(t, int64(1), returned.TotalElements)

	_, err = repo.FindUnresolvedRecord(ctx, id, borrower.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_Feedback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(newMemRepo())
	id := addBook(t, svc, true)

	tests := []struct {
		name    string
		note    float64
		comment string
		wantErr error
	}{
		{name: "above range", note: 6.0, comment: "too much", wantErr: errs.ErrInvalidInput},
		{name: "below range", note: -0.5, comment: "too little", wantErr: errs.ErrInvalidInput},
		{name: "blank comment", note: 3, comment: "  ", wantErr: errs.ErrInvalidInput},
		{name: "lower bound", note: 0, comment: "meh"},
		{name: "upper bound", note: 5, comment: "great"},
		{name: "ok", note: 4.5, comment: "worth it"},
	}
	for _, tt := range tests {
		_, err := svc.AddFeedback(ctx, borrower, id, tt.note, tt.comment)
		if tt.wantErr != nil {
			require.ErrorIs(t, err, tt.wantErr, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
	}

	_, err := svc.AddFeedback(ctx, other, id, 2, "not for me")
	require.NoError(t, err)

	_, err = svc.AddFeedback(ctx, borrower, 404, 4, "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)

	mine, err := svc.ListFeedback(ctx, borrower, id, firstPage)
	require.NoError(t, err)
	require.Equal(t, int64(4), mine.TotalElements)
	for _, f := range mine.Content {
		require.Equal(t, f.Comment != "not for me", f.OwnFeedback, f.Comment)
	}

	theirs, err := svc.ListFeedback(ctx, other, id, firstPage)
	require.NoError(t, err)
	for _, f := range theirs.Content {
		require.Equal(t, f.Comment == "not for me", f.OwnFeedback, f.Comment)
	}
}

func TestService_NotFoundComesFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(newMemRepo())

	_, err := svc.BorrowBook(ctx, borrower, 42)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.EqualError(t, err, "no book found with ID 42")
	_, err = svc.ReturnBook(ctx, borrower, 42)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = svc.ApproveReturn(ctx, owner, 42)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = svc.ToggleShareable(ctx, owner, 42)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = svc.FindBook(ctx, 42)
	require.ErrorIs(t, err, errs.ErrNotFound)
	// an invalid note on a missing book is still NotFound
	_, err = svc.AddFeedback(ctx, borrower, 42, 9, "")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_Manage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(newMemRepo())
	id := addBook(t, svc, false)

	_, err := svc.ToggleShareable(ctx, borrower, id)
	require.ErrorIs(t, err, errs.ErrNotPermitted)
	_, err = svc.ToggleArchived(ctx, borrower, id)
	require.ErrorIs(t, err, errs.ErrNotPermitted)
	_, err = svc.UpdateCover(ctx, borrower, id, "covers/x.png")
	require.ErrorIs(t, err, errs.ErrNotPermitted)

	got, err := svc.ToggleShareable(ctx, owner, id)
	require.NoError(t, err)
	require.Equal(t, id, got)
	_, err = svc.UpdateCover(ctx, owner, id, "covers/1.png")
	require.NoError(t, err)

	book, err := svc.FindBook(ctx, id)
	require.NoError(t, err)
	require.True(t, book.Shareable)
	require.False(t, book.Archived)
	require.Equal(t, "covers/1.png", book.Cover)
	require.Equal(t, owner.ID, book.OwnerID)

	displayable, err := svc.ListDisplayableBooks(ctx, borrower, firstPage)
	require.NoError(t, err)
	require.Len(t, displayable.Content, 1)

	displayable, err = svc.ListDisplayableBooks(ctx, owner, firstPage)
	require.NoError(t, err)
	require.Empty(t, displayable.Content)

	owned, err := svc.ListOwnedBooks(ctx, owner, firstPage)
	require.NoError(t, err)
	require.Equal(t, int64(1), owned.TotalElements)
}

func TestService_ArchivedMidLoanCannotBeReturned(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(newMemRepo())
	id := addBook(t, svc, true)

	_, err := svc.BorrowBook(ctx, borrower, id)
	require.NoError(t, err)
	_, err = svc.ToggleArchived(ctx, owner, id)
	require.NoError(t, err)

	_, err = svc.ReturnBook(ctx, borrower, id)
	require.ErrorIs(t, err, errs.ErrNotPermitted)
}

func TestService_SeedRoles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newMemRepo()
	svc := newService(repo)

	require.Error(t, svc.SeedRoles(ctx, nil))
	require.NoError(t, svc.SeedRoles(ctx, []string{"USER"}))
	require.NoError(t, svc.SeedRoles(ctx, []string{"USER"}))

	roles, err := repo.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
}

func TestService_Events(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	book := model.Book{ID: 7, OwnerID: owner.ID, Shareable: true}

	type mockBehavior func(r *mocks.MockRepository, q *mocks.MockEnqueuer)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		wantID       int64
		wantErr      error
		wantErrMsg   string
	}{
		{
			name: "borrow publishes",
			mockBehavior: func(r *mocks.MockRepository, q *mocks.MockEnqueuer) {
				r.EXPECT().GetBook(ctx, book.ID).Return(book, nil)
				r.EXPECT().FindUnresolvedRecord(ctx, book.ID, borrower.ID).Return(model.TransactionRecord{}, errs.ErrNotFound)
				r.EXPECT().CreateTransaction(ctx, gomock.Any()).Return(int64(11), nil)
				q.EXPECT().Enqueue(ctx, kafka.LendingTopic, "7", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, v any) error {
						ev, ok := v.(kafka.EventLending)
						require.True(t, ok)
						require.Equal(t, kafka.EventBorrowed, ev.EventType)
						require.Equal(t, int64(11), ev.RecordID)
						require.Equal(t, borrower.ID, ev.UserID)
						require.Equal(t, owner.ID, ev.OwnerID)
						require.NotEmpty(t, ev.EventID)
						return nil
					})
			},
			wantID: 11,
		},
		{
			name: "publish failure does not fail borrow",
			mockBehavior: func(r *mocks.MockRepository, q *mocks.MockEnqueuer) {
				r.EXPECT().GetBook(ctx, book.ID).Return(book, nil)
				r.EXPECT().FindUnresolvedRecord(ctx, book.ID, borrower.ID).Return(model.TransactionRecord{}, errs.ErrNotFound)
				r.EXPECT().CreateTransaction(ctx, gomock.Any()).Return(int64(12), nil)
				q.EXPECT().Enqueue(ctx, kafka.LendingTopic, "7", gomock.Any()).Return(errors.New("broker down"))
			},
			wantID: 12,
		},
		{
			name: "store race surfaces as already borrowed",
			mockBehavior: func(r *mocks.MockRepository, q *mocks.MockEnqueuer) {
				r.EXPECT().GetBook(ctx, book.ID).Return(book, nil)
				r.EXPECT().FindUnresolvedRecord(ctx, book.ID, borrower.ID).Return(model.TransactionRecord{}, errs.ErrNotFound)
				r.EXPECT().CreateTransaction(ctx, gomock.Any()).Return(int64(0), errors.Wrap(errs.ErrAlreadyBorrowed, "unique"))
			},
			wantErr: errs.ErrAlreadyBorrowed,
		},
		{
			name: "store failure is internal",
			mockBehavior: func(r *mocks.MockRepository, q *mocks.MockEnqueuer) {
				r.EXPECT().GetBook(ctx, book.ID).Return(model.Book{}, errors.New("conn refused"))
			},
			wantErrMsg: "GetBook: conn refused",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()

			repo := mocks.NewMockRepository(c)
			q := mocks.NewMockEnqueuer(c)
			tt.mockBehavior(repo, q)

			svc := service.NewService(repo, q, zap.NewNop())
			id, err := svc.BorrowBook(ctx, borrower, book.ID)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				return
			case tt.wantErrMsg != "":
				require.EqualError(t, err, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, id)
		})
	}
}

func TestService_ApproveReturnEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := gomock.NewController(t)
	defer c.Finish()

	book := model.Book{ID: 9, OwnerID: owner.ID, Shareable: true}
	repo := mocks.NewMockRepository(c)
	q := mocks.NewMockEnqueuer(c)
	gomock.InOrder(
		repo.EXPECT().GetBook(ctx, book.ID).Return(book, nil),
		repo.EXPECT().ApproveReturn(ctx, book.ID, owner.ID).
			Return(model.TransactionRecord{ID: 5, BookID: book.ID, UserID: borrower.ID, Returned: true, ReturnedApprove: true}, nil),
		q.EXPECT().Enqueue(ctx, kafka.LendingTopic, "9", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, v any) error {
				ev := v.(kafka.EventLending)
				require.Equal(t, kafka.EventReturnApproved, ev.EventType)
				require.Equal(t, borrower.ID, ev.UserID)
				return nil
			}),
	)

	svc := service.NewService(repo, q, zap.NewNop())
	id, err := svc.ApproveReturn(ctx, owner, book.ID)
	require.NoError(t, err)
	require.Equal(t, int64(5), id)
}

func TestService_ApproveReturnPublishesApprovedBorrower(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := gomock.NewController(t)
	defer c.Finish()

	repo := newMemRepo()
	setup := newService(repo)
	id := addBook(t, setup, true)
	for _, who := range []model.Identity{borrower, other} {
		_, err := setup.BorrowBook(ctx, who, id)
		require.NoError(t, err)
		_, err = setup.ReturnBook(ctx, who, id)
		require.NoError(t, err)
	}

	var published []int64
	q := mocks.NewMockEnqueuer(c)
	q.EXPECT().Enqueue(ctx, kafka.LendingTopic, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, v any) error {
			published = append(published, v.(kafka.EventLending).UserID)
			return nil
		}).Times(2)

	svc := service.NewService(repo, q, zap.NewNop())
	_, err := svc.ApproveReturn(ctx, owner, id)
	require.NoError(t, err)
	_, err = svc.ApproveReturn(ctx, owner, id)
	require.NoError(t, err)

	// oldest returned loan is approved first
	require.Equal(t, []int64{borrower.ID, other.ID}, published)
}
