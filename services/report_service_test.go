package services_test

import (
	"fmt"
	"log/slog"
	"testing"

	"califica-tu-profe/domain/report"
	"califica-tu-profe/errors"
	"califica-tu-profe/mocks"
	"califica-tu-profe/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportService_Submit(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockIReportRepository(ctrl)
	content := mocks.NewMockIContentRepository(ctrl)
	service := services.NewReportService(reports, content, log)

	reports.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(r report.ContentReport) (report.ContentReport, error) {
			require.Equal(t, report.StatusPending, r.Status)
			require.Equal(t, report.ContentTypeReview, r.ContentType)
			require.False(t, r.ReportedAt.IsZero())
			r.ID = "report-1"
			return r, nil
		})
	content.EXPECT().Hide(report.ContentTypeReview, "review-1", report.HiddenReasonReported, gomock.Any()).
		Return(nil)

	created, err := service.Submit(services.SubmitReportRequest{
		ContentType: "review",
		ContentID:   "review-1",
		Reason:      "contenido ofensivo",
		ReportedBy:  "user-7",
	})

	req.NoError(err)
	req.Equal("report-1", created.ID)
	req.Equal(report.StatusPending, created.Status)
}

func TestReportService_SubmitValidation(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	// No repository call may happen on invalid input.
	service := services.NewReportService(mocks.NewMockIReportRepository(ctrl),
		mocks.NewMockIContentRepository(ctrl), log)

	tests := []struct {
		name    string
		request services.SubmitReportRequest
		wantErr error
	}{
		{
			name: "Unknown content type",
			request: services.SubmitReportRequest{
				ContentType: "institution", ContentID: "x",
				Reason: "spam", ReportedBy: "user-1",
			},
			wantErr: errors.ErrInvalidContentType,
		},
		{
			name: "Missing reason",
			request: services.SubmitReportRequest{
				ContentType: "review", ContentID: "x", ReportedBy: "user-1",
			},
			wantErr: errors.ErrEmptyReason,
		},
		{
			name: "Missing reporter",
			request: services.SubmitReportRequest{
				ContentType: "review", ContentID: "x", Reason: "spam",
			},
			wantErr: errors.ErrMissingReporter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Submit(tt.request)
			req.ErrorIs(err, tt.wantErr)
		})
	}
}

func TestReportService_SubmitSucceedsWhenContentMissing(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockIReportRepository(ctrl)
	content := mocks.NewMockIContentRepository(ctrl)
	service := services.NewReportService(reports, content, log)

	reports.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(r report.ContentReport) (report.ContentReport, error) {
			r.ID = "report-2"
			return r, nil
		})
	content.EXPECT().Hide(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: reviews/ghost", errors.ErrDocumentNotFound))

	created, err := service.Submit(services.SubmitReportRequest{
		ContentType: "review",
		ContentID:   "ghost",
		Reason:      "spam",
		ReportedBy:  "user-1",
	})

	// The hide step is best effort: the report must still be created.
	req.NoError(err)
	req.Equal("report-2", created.ID)
}

func TestReportService_SubmitFailsWhenReportNotDurable(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockIReportRepository(ctrl)
	content := mocks.NewMockIContentRepository(ctrl)
	service := services.NewReportService(reports, content, log)

	reports.EXPECT().Create(gomock.Any()).
		Return(report.ContentReport{}, fmt.Errorf("storage unreachable"))
	// Hide must not be attempted without a durable report.

	_, err := service.Submit(services.SubmitReportRequest{
		ContentType: "review",
		ContentID:   "review-1",
		Reason:      "spam",
		ReportedBy:  "user-1",
	})
	req.Error(err)
}

func TestReportService_Resolve(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockIReportRepository(ctrl)
	service := services.NewReportService(reports, mocks.NewMockIContentRepository(ctrl), log)

	reports.EXPECT().Resolve("report-1", report.ActionApprove, "admin-1", "confirmado", gomock.Any()).
		Return(nil)

	err := service.Resolve("report-1", report.ActionApprove, "admin-1", "confirmado")
	req.NoError(err)
}

func TestReportService_ResolveInvalidAction(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	// Invalid actions must not reach the repository.
	service := services.NewReportService(mocks.NewMockIReportRepository(ctrl),
		mocks.NewMockIContentRepository(ctrl), log)

	err := service.Resolve("report-1", report.Action("escalate"), "admin-1", "")
	req.ErrorIs(err, errors.ErrInvalidAction)
}

func TestReportService_Unhide(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	content := mocks.NewMockIContentRepository(ctrl)
	service := services.NewReportService(mocks.NewMockIReportRepository(ctrl), content, log)

	content.EXPECT().Unhide(report.ContentTypeReview, "review-1").Return(nil)
	req.NoError(service.Unhide(report.ContentTypeReview, "review-1"))

	err := service.Unhide(report.ContentType("page"), "x")
	req.ErrorIs(err, errors.ErrInvalidContentType)
}
