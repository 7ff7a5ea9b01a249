package scenario

import (
	"context"
	"fmt"
	"log/slog"

	"bookstore/internal/book"
	"bookstore/internal/entity"
	"bookstore/internal/seed"
	"bookstore/internal/user"

	"github.com/google/uuid"
)

// Runner executes scenarios against one user service and one book service.
// State carries over between runs.
type Runner struct {
	users  *user.Service
	books  *book.Service
	logger *slog.Logger
}

func NewRunner(users *user.Service, books *book.Service, logger *slog.Logger) *Runner {
	return &Runner{
		users:  users,
		books:  books,
		logger: logger,
	}
}

// Run applies the scenario seed, then executes each step in order. A step
// whose outcome differs from its expectation is counted in
// Report.Failures; malformed steps abort the run.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (Report, error) {
	report := Report{
		Name:  sc.Name,
		RunID: uuid.New().String(),
		Steps: make([]StepResult, 0, len(sc.Steps)),
	}
	logger := r.logger.With("run_id", report.RunID)
	logger.Info("scenario started", "name", sc.Name, "steps", len(sc.Steps))

	if sc.Seed != nil {
		summary, err := seed.Apply(ctx, sc.Seed, r.users, r.books, logger)
		if err != nil {
			return report, fmt.Errorf("seed: %w", err)
		}
		report.Seed = &summary
	}

	for i, step := range sc.Steps {
		result, err := r.runStep(ctx, step)
		if err != nil {
			logger.Error("scenario aborted", "step", i, "op", step.Op, "error", err)
			return report, fmt.Errorf("step %d: %w", i, err)
		}
		result.Index = i
		result.Op = step.Op
		result.Mismatch = checkExpectations(step, result)
		if result.Mismatch != "" {
			report.Failures++
			logger.Warn("step expectation failed", "step", i, "op", step.Op, "mismatch", result.Mismatch)
		} else {
			logger.Debug("step done", "step", i, "op", step.Op, "ok", result.OK)
		}
		report.Steps = append(report.Steps, result)
	}

	logger.Info("scenario finished", "name", sc.Name, "failures", report.Failures)
	return report, nil
}

func (r *Runner) runStep(ctx context.Context, step Step) (StepResult, error) {
	switch step.Op {
	case OpRegister:
		u := entity.NewUser(step.User, step.Password, step.Email)
		return StepResult{OK: r.users.Register(ctx, u)}, nil

	case OpLogin:
		u, ok := r.users.Login(ctx, step.User, step.Password)
		return StepResult{OK: ok, User: u}, nil

	case OpUpdateProfile:
		u, err := r.lookupUser(ctx, step.User)
		if err != nil {
			return StepResult{}, err
		}
		ok := r.users.UpdateProfile(ctx, u, step.NewUsername, step.NewPassword, step.NewEmail)
		return StepResult{OK: ok, User: u}, nil

	case OpSearch:
		books := r.books.Search(ctx, step.Keyword)
		return StepResult{OK: true, Books: books}, nil
	}

	b, err := stepBook(step)
	if err != nil {
		return StepResult{}, err
	}

	switch step.Op {
	case OpAddBook:
		return StepResult{OK: r.books.Add(ctx, b)}, nil

	case OpRemoveBook:
		return StepResult{OK: r.books.Remove(ctx, b)}, nil

	case OpReviews:
		reviews, ok := r.books.Reviews(ctx, b)
		return StepResult{OK: ok, Reviews: reviews}, nil

	case OpPurchase:
		u, err := r.lookupUser(ctx, step.User)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{OK: r.books.Purchase(ctx, u, b)}, nil

	case OpReview:
		u, err := r.lookupUser(ctx, step.User)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{OK: r.books.AddReview(ctx, u, b, step.Review)}, nil
	}

	return StepResult{}, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
}

func (r *Runner) lookupUser(ctx context.Context, username string) (*entity.User, error) {
	u, ok := r.users.Get(ctx, username)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUser, username)
	}
	return u, nil
}

func stepBook(step Step) (*entity.Book, error) {
	switch step.Op {
	case OpAddBook, OpRemoveBook, OpReviews, OpPurchase, OpReview:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	if step.Book == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingBook, step.Op)
	}
	return step.Book.Book()
}

func checkExpectations(step Step, result StepResult) string {
	if step.Expect != nil && *step.Expect != result.OK {
		return fmt.Sprintf("expected ok=%t, got ok=%t", *step.Expect, result.OK)
	}
	if step.ExpectCount != nil {
		got := len(result.Books)
		if step.Op == OpReviews {
			got = len(result.Reviews)
		}
		if got != *step.ExpectCount {
			return fmt.Sprintf("expected %d results, got %d", *step.ExpectCount, got)
		}
	}
	return ""
}
