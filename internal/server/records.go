package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/bistrodata/invoice-tracker/gen/proto/invoices/v1"
	"github.com/bistrodata/invoice-tracker/internal/common"
	"github.com/bistrodata/invoice-tracker/internal/repository"
	"github.com/bistrodata/invoice-tracker/internal/utils"
)

type RecordsService struct {
	v1.UnimplementedRecordsServiceServer
	records repository.RecordRepository
	sales   repository.SalesRepository
	logger  *slog.Logger
}

func NewRecordsService(records repository.RecordRepository, sales repository.SalesRepository, logger *slog.Logger) *RecordsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordsService{
		records: records,
		sales:   sales,
		logger:  logger,
	}
}

func (s *RecordsService) ListRecords(ctx context.Context, req *v1.ListRecordsRequest) (*v1.ListRecordsResponse, error) {
	fromDate, toDate, err := parseWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		s.logger.Error("list records request rejected", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	recs, err := s.records.ListByDateRange(ctx, fromDate, toDate, strings.TrimSpace(req.GetVendor()))
	if err != nil {
		s.logger.Error("failed to list records", "error", err)
		return nil, status.Errorf(codes.Internal, "list records: %v", err)
	}
	s.logger.Info("records listed", "count", len(recs))

	out := make([]*v1.PurchaseRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBRecord(r))
	}
	return &v1.ListRecordsResponse{Records: out}, nil
}

func (s *RecordsService) ListSales(ctx context.Context, req *v1.ListSalesRequest) (*v1.ListSalesResponse, error) {
	fromDate, toDate, err := parseWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		s.logger.Error("list sales request rejected", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	rows, err := s.sales.ListByDateRange(ctx, fromDate, toDate, strings.TrimSpace(req.GetItem()))
	if err != nil {
		s.logger.Error("failed to list sales", "error", err)
		return nil, status.Errorf(codes.Internal, "list sales: %v", err)
	}
	s.logger.Info("sales listed", "count", len(rows))

	out := make([]*v1.SalesRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, utils.ToPBSalesRecord(r))
	}
	return &v1.ListSalesResponse{Records: out}, nil
}

func (s *RecordsService) GetSummary(ctx context.Context, _ *v1.GetSummaryRequest) (*v1.GetSummaryResponse, error) {
	purchases, err := s.records.Summary(ctx)
	if err != nil {
		s.logger.Error("failed to summarize records", "error", err)
		return nil, status.Errorf(codes.Internal, "records summary: %v", err)
	}
	sales, err := s.sales.Summary(ctx)
	if err != nil {
		s.logger.Error("failed to summarize sales", "error", err)
		return nil, status.Errorf(codes.Internal, "sales summary: %v", err)
	}

	return &v1.GetSummaryResponse{
		Purchases: utils.ToPBSummary(purchases),
		Sales:     utils.ToPBSummary(sales),
	}, nil
}

func (s *RecordsService) DeleteByDateRange(ctx context.Context, req *v1.DeleteByDateRangeRequest) (*v1.DeleteByDateRangeResponse, error) {
	validator := common.NewValidator().
		Field("from_date", req.GetFromDate(), common.Required, common.YMDDate).
		Field("to_date", req.GetToDate(), common.Required, common.YMDDate)
	if err := validator.Error(); err != nil {
		s.logger.Error("delete request rejected", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	from, _ := utils.ParseYMD(req.GetFromDate())
	to, _ := utils.ParseYMD(req.GetToDate())
	if to.Before(from) {
		return nil, status.Error(codes.InvalidArgument, "to_date must not precede from_date")
	}

	var deleted int
	var err error
	switch req.GetTable() {
	case v1.RecordTable_RECORD_TABLE_PURCHASES:
		deleted, err = s.records.DeleteByDateRange(ctx, from, to)
	case v1.RecordTable_RECORD_TABLE_SALES:
		deleted, err = s.sales.DeleteByDateRange(ctx, from, to)
	default:
		return nil, status.Error(codes.InvalidArgument, "table must be purchases or sales")
	}
	if err != nil {
		s.logger.Error("failed to delete by date range", "table", req.GetTable().String(), "error", err)
		return nil, status.Errorf(codes.Internal, "delete: %v", err)
	}

	s.logger.Info("records deleted",
		"table", req.GetTable().String(),
		"from", req.GetFromDate(),
		"to", req.GetToDate(),
		"deleted", deleted,
	)
	return &v1.DeleteByDateRangeResponse{Deleted: uint32(deleted)}, nil
}

// parseWindow turns optional YYYY-MM-DD bounds into time pointers.
func parseWindow(from, to string) (*time.Time, *time.Time, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(from); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &t
	}
	if td := strings.TrimSpace(to); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &t
	}
	return fromDate, toDate, nil
}
