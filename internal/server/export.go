package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/bistrodata/invoice-tracker/gen/proto/invoices/v1"
	"github.com/bistrodata/invoice-tracker/internal/export"
	"github.com/bistrodata/invoice-tracker/internal/utils"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportReport(ctx context.Context, req *v1.ExportReportRequest) (*v1.ExportReportResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	return &v1.ExportReportResponse{Xlsx: xlsx}, nil
}
