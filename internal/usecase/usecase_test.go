package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"portfolio-backend/internal/content"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/actionstate"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const operator = "owner@example.com"

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

// Mock Visit Repository
type MockVisitRepo struct {
	mock.Mock
}

func (m *MockVisitRepo) Create(ctx context.Context, visit *domain.Visit) error {
	return m.Called(ctx, visit).Error(0)
}

func (m *MockVisitRepo) Stats(ctx context.Context, now time.Time, topN int) (*domain.VisitStats, error) {
	args := m.Called(ctx, now, topN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisitStats), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func validInput() map[string]any {
	return map[string]any{
		"name":    "John Doe",
		"email":   "john@example.com",
		"subject": "Test Subject",
		"message": "Test Message",
	}
}

func TestParseContactSubmission(t *testing.T) {
	t.Run("Should accept a valid submission", func(t *testing.T) {
		sub, err := usecase.ParseContactSubmission(map[string]any{
			"email":   "test@example.com",
			"message": "Test message",
			"name":    "John Doe",
			"subject": "Test Subject",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ContactSubmission{
			Name: "John Doe", Email: "test@example.com", Subject: "Test Subject", Message: "Test message",
		}, sub)
	})

	t.Run("Should report every required field when input is empty", func(t *testing.T) {
		_, err := usecase.ParseContactSubmission(map[string]any{})
		state := actionstate.FromError(err)
		assert.Equal(t, []string{"Name is required."}, state.FieldErrors["name"])
		assert.Equal(t, []string{"Subject is required."}, state.FieldErrors["subject"])
		assert.Equal(t, []string{"Message is required."}, state.FieldErrors["message"])
		assert.Equal(t, []string{"Email is required.", "Email is invalid."}, state.FieldErrors["email"])
	})

	t.Run("Should report both email messages for an empty email", func(t *testing.T) {
		in := validInput()
		in["email"] = ""
		_, err := usecase.ParseContactSubmission(in)
		state := actionstate.FromError(err)
		assert.Equal(t, []string{"Email is required.", "Email is invalid."}, state.FieldErrors["email"])
		assert.Len(t, state.FieldErrors, 1)
	})

	t.Run("Should report only the format message for a malformed email", func(t *testing.T) {
		in := validInput()
		in["email"] = "invalid-email"
		_, err := usecase.ParseContactSubmission(in)
		state := actionstate.FromError(err)
		assert.Equal(t, []string{"Email is invalid."}, state.FieldErrors["email"])
	})

	for _, field := range []string{"name", "subject", "message"} {
		t.Run("Should report a single message for empty "+field, func(t *testing.T) {
			in := validInput()
			in[field] = ""
			_, err := usecase.ParseContactSubmission(in)
			state := actionstate.FromError(err)
			assert.Len(t, state.FieldErrors[field], 1)
			assert.Contains(t, state.FieldErrors[field][0], "is required.")
		})
	}
}

func TestSendContact(t *testing.T) {
	t.Run("Should deliver a valid submission to the operator", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewContactUsecase(mailer, operator, discardLogger())

		mailer.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(nil).Run(func(args mock.Arguments) {
			msg := args.Get(1).(email.Message)
			assert.Equal(t, operator, msg.To)
			assert.Equal(t, "john@example.com", msg.From)
			assert.Equal(t, "john@example.com", msg.ReplyTo)
			assert.Equal(t, "Test Subject", msg.Subject)
			assert.Contains(t, msg.Text, "John Doe")
			assert.Equal(t, "Name: John Doe\nEmail: john@example.com\nMessage: Test Message", msg.Text)
		})

		state := uc.SendContact(context.Background(), actionstate.Empty(), validInput())

		assert.Equal(t, domain.ContactSuccessMessage, state.Message)
		assert.True(t, state.Succeeded())
		assert.Empty(t, state.FieldErrors)
		mailer.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Should not deliver when validation fails", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewContactUsecase(mailer, operator, discardLogger())

		in := validInput()
		delete(in, "email")
		state := uc.SendContact(context.Background(), actionstate.Empty(), in)

		assert.Equal(t, []string{"Email is required.", "Email is invalid."}, state.FieldErrors["email"])
		assert.Empty(t, state.Message)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Should surface delivery failures as a message", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewContactUsecase(mailer, operator, discardLogger())
		mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("Failed to send email"))

		state := uc.SendContact(context.Background(), actionstate.Empty(), validInput())

		assert.Equal(t, actionstate.ActionState{FieldErrors: map[string][]string{}, Message: "Failed to send email"}, state)
		mailer.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Should hide transport details behind DeliveryError", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewContactUsecase(mailer, operator, discardLogger())
		mailer.On("Send", mock.Anything, mock.Anything).Return(&email.DeliveryError{Err: errors.New("dial tcp: connection refused")})

		state := uc.SendContact(context.Background(), actionstate.Empty(), validInput())

		assert.Equal(t, email.DeliveryFailedMessage, state.Message)
		assert.False(t, state.Succeeded())
		assert.Empty(t, state.FieldErrors)
	})

	t.Run("Should ignore the previous state", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewContactUsecase(mailer, operator, discardLogger())
		mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

		prev := actionstate.FromError(errors.New("earlier failure"))
		state := uc.SendContact(context.Background(), prev, validInput())

		assert.Equal(t, domain.ContactSuccessMessage, state.Message)
	})
}

func TestContentUsecase(t *testing.T) {
	uc := usecase.NewContentUsecase(content.Portfolio(), "https://agustincassani.com")
	ctx := context.Background()

	t.Run("Should return known sections", func(t *testing.T) {
		exp, err := uc.GetSection(ctx, domain.ContentExperience)
		require.NoError(t, err)
		assert.NotEmpty(t, exp.([]domain.Experience))

		profile, err := uc.GetSection(ctx, domain.ContentProfile)
		require.NoError(t, err)
		assert.Equal(t, "Agustin Cassani", profile.(domain.Profile).Name)
	})

	t.Run("Should return NotFound for unknown sections", func(t *testing.T) {
		_, err := uc.GetSection(ctx, "blog")
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should build Person and WebSite JSON-LD", func(t *testing.T) {
		docs := uc.StructuredData(ctx)
		require.Len(t, docs, 2)
		assert.Equal(t, "Person", docs[0]["@type"])
		assert.Equal(t, "https://agustincassani.com/profile-image.jpeg", docs[0]["image"])
		assert.Equal(t, "WebSite", docs[1]["@type"])

		action := docs[1]["potentialAction"].(map[string]any)
		assert.Contains(t, action["target"], "site%3Aagustincassani.com+")
	})
}

func TestNavigationUsecase(t *testing.T) {
	uc := usecase.NewNavigationUsecase([]string{"home", "about", "experience", "skills", "contact"})
	ctx := context.Background()

	assert.Equal(t, "skills", uc.Resolve(ctx, "/", "#skills").Section)
	assert.Equal(t, "resume", uc.Resolve(ctx, "/resume", "#skills").Section)
	assert.Equal(t, "home", uc.Resolve(ctx, "/blog/post", "#skills").Section)

	state := uc.Visible(ctx, domain.VisibilityReport{Ratios: map[string]float64{"about": 0.3}})
	assert.Equal(t, "home", state.Section)

	state = uc.Visible(ctx, domain.VisibilityReport{Current: "about", Ratios: map[string]float64{"contact": 0.9}, Threshold: 0.95})
	assert.Equal(t, "about", state.Section)
}

func TestAnalyticsUsecase(t *testing.T) {
	t.Run("Should hash the client IP before storing", func(t *testing.T) {
		repo := new(MockVisitRepo)
		uc := usecase.NewAnalyticsUsecase(repo, "pepper")

		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Visit")).Return(nil).Run(func(args mock.Arguments) {
			v := args.Get(1).(*domain.Visit)
			assert.Equal(t, usecase.HashIP("203.0.113.7", "pepper"), v.HashedIP)
			assert.NotContains(t, v.HashedIP, "203.0.113.7")
			assert.Len(t, v.HashedIP, 16)
			assert.Equal(t, "/v1/content", v.Path)
			assert.NotEmpty(t, v.ID)
		})

		require.NoError(t, uc.RecordVisit(context.Background(), "203.0.113.7", "/v1/content", "curl/8"))
		repo.AssertExpectations(t)
	})

	t.Run("Should report disabled without a repository", func(t *testing.T) {
		uc := usecase.NewAnalyticsUsecase(nil, "")
		assert.False(t, uc.Enabled())
		assert.ErrorIs(t, uc.RecordVisit(context.Background(), "ip", "/", ""), usecase.ErrAnalyticsDisabled)
		_, err := uc.GetStats(context.Background())
		assert.ErrorIs(t, err, usecase.ErrAnalyticsDisabled)
	})

	t.Run("Should request the top paths", func(t *testing.T) {
		repo := new(MockVisitRepo)
		uc := usecase.NewAnalyticsUsecase(repo, "")
		repo.On("Stats", mock.Anything, mock.AnythingOfType("time.Time"), 10).Return(&domain.VisitStats{TotalVisits: 3}, nil)

		stats, err := uc.GetStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalVisits)
	})
}

func TestExportStats(t *testing.T) {
	stats := &domain.VisitStats{
		TotalVisits: 12, UniqueVisitors: 5, VisitsToday: 2, VisitsThisWeek: 7,
		TopPaths: []domain.PathCount{{Path: "/v1/content", Count: 9}, {Path: "/resume.pdf", Count: 3}},
	}
	newUC := func() domain.AnalyticsUsecase {
		repo := new(MockVisitRepo)
		repo.On("Stats", mock.Anything, mock.Anything, mock.Anything).Return(stats, nil)
		return usecase.NewAnalyticsUsecase(repo, "")
	}

	t.Run("Should export an Excel workbook", func(t *testing.T) {
		data, name, err := newUC().ExportStats(context.Background(), "")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, ".xlsx"))

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Summary", "Top Paths"}, f.GetSheetList())
		total, err := f.GetCellValue("Summary", "B2")
		require.NoError(t, err)
		assert.Equal(t, "12", total)
		path, err := f.GetCellValue("Top Paths", "A2")
		require.NoError(t, err)
		assert.Equal(t, "/v1/content", path)
	})

	t.Run("Should export CSV", func(t *testing.T) {
		data, name, err := newUC().ExportStats(context.Background(), usecase.ExportCSV)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, ".csv"))
		assert.Contains(t, string(data), "UNIQUE VISITORS,5\n")
		assert.Contains(t, string(data), "/resume.pdf,3\n")
	})

	t.Run("Should reject unknown formats", func(t *testing.T) {
		_, _, err := newUC().ExportStats(context.Background(), "pdf")
		assert.ErrorIs(t, err, usecase.ErrUnsupportedFormat)
	})

	t.Run("Should report disabled analytics", func(t *testing.T) {
		_, _, err := usecase.NewAnalyticsUsecase(nil, "").ExportStats(context.Background(), "csv")
		assert.ErrorIs(t, err, usecase.ErrAnalyticsDisabled)
	})
}
