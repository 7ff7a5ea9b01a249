package scenario

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"bookstore/internal/book"
	"bookstore/internal/platform/logging"
	"bookstore/internal/seed"
	"bookstore/internal/store"
	"bookstore/internal/user"
	"bookstore/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner() *Runner {
	db := store.NewUserMemory()
	return NewRunner(user.NewService(db), book.NewService(db), logging.Discard())
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func book1() *seed.BookFixture {
	return &seed.BookFixture{Title: "Book 1", Author: "Author 1", Genre: "Genre 1", Price: "12.99"}
}

func TestRunner_Walkthrough(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "walkthrough.yaml"))
	require.NoError(t, err)

	report, err := newRunner().Run(context.Background(), sc)
	require.NoError(t, err)

	assert.Equal(t, "walkthrough", report.Name)
	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
	require.NotNil(t, report.Seed)
	assert.Equal(t, 2, report.Seed.BooksAdded)
	require.Len(t, report.Steps, len(sc.Steps))
	for _, step := range report.Steps {
		assert.Empty(t, step.Mismatch, "step %d (%s)", step.Index, step.Op)
	}
	assert.Zero(t, report.Failures)

	reviews := report.Steps[9]
	assert.Equal(t, OpReviews, reviews.Op)
	assert.Equal(t, []string{"Great book, highly recommend!"}, reviews.Reviews)

	login := report.Steps[12]
	require.NotNil(t, login.User)
	assert.Equal(t, "newName", login.User.Username)
}

func TestRunner_Expectations(t *testing.T) {
	sc := &Scenario{
		Name: "mismatches",
		Steps: []Step{
			{Op: OpRegister, User: "testUser", Password: "pw", Expect: boolPtr(false)},
			{Op: OpSearch, Keyword: "", ExpectCount: intPtr(3)},
			{Op: OpAddBook, Book: book1(), Expect: boolPtr(true)},
		},
	}

	report, err := newRunner().Run(context.Background(), sc)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Failures)
	assert.Equal(t, "expected ok=false, got ok=true", report.Steps[0].Mismatch)
	assert.Equal(t, "expected 3 results, got 0", report.Steps[1].Mismatch)
	assert.Empty(t, report.Steps[2].Mismatch)
}

func TestRunner_StateCarriesOver(t *testing.T) {
	ctx := context.Background()
	r := newRunner()

	_, err := r.Run(ctx, &Scenario{Steps: []Step{{Op: OpAddBook, Book: book1()}}})
	require.NoError(t, err)

	report, err := r.Run(ctx, &Scenario{Steps: []Step{{Op: OpSearch, Keyword: "Book"}}})
	require.NoError(t, err)
	assert.Len(t, report.Steps[0].Books, 1)
}

func TestRunner_Errors(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want error
	}{
		{"unknown op", Step{Op: "borrow"}, ErrUnknownOp},
		{"purchase by unknown user", Step{Op: OpPurchase, User: "ghost", Book: book1()}, ErrUnknownUser},
		{"review by unknown user", Step{Op: OpReview, User: "ghost", Book: book1()}, ErrUnknownUser},
		{"update unknown user", Step{Op: OpUpdateProfile, User: "ghost"}, ErrUnknownUser},
		{"add without book", Step{Op: OpAddBook}, ErrMissingBook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newRunner().Run(context.Background(), &Scenario{Steps: []Step{tt.step}})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "step 0")
		})
	}

	t.Run("seed failure", func(t *testing.T) {
		sc := &Scenario{Seed: &seed.Fixture{Purchases: []seed.PurchaseFixture{{Username: "ghost", Title: "T"}}}}
		_, err := newRunner().Run(context.Background(), sc)
		assert.ErrorIs(t, err, seed.ErrUnknownUser)
	})
}

func TestRunner_LogsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "debug", logging.FormatText)
	require.NoError(t, err)

	db := store.NewUserMemory()
	r := NewRunner(user.NewService(db), book.NewService(db), logger)

	report, err := r.Run(context.Background(), &Scenario{Name: "logged", Steps: []Step{{Op: OpSearch}}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "run_id="+report.RunID)
	assert.Contains(t, buf.String(), "msg=\"step done\"")
}

func TestParse(t *testing.T) {
	t.Run("unknown op is rejected", func(t *testing.T) {
		_, err := Parse([]byte("steps:\n  - op: borrow\n"))
		var vErr *validation.Error
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("book without price is rejected", func(t *testing.T) {
		_, err := Parse([]byte("steps:\n  - op: add_book\n    book: {title: T}\n"))
		var vErr *validation.Error
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("valid", func(t *testing.T) {
		sc, err := Parse([]byte("name: n\nsteps:\n  - {op: search, keyword: Go, expect_count: 0}\n"))
		require.NoError(t, err)
		require.Len(t, sc.Steps, 1)
		assert.Equal(t, 0, *sc.Steps[0].ExpectCount)
		assert.Nil(t, sc.Steps[0].Expect)
	})
}
