package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/internal/domain/repository"
	"github.com/sangkips/cospharm-api/internal/infrastructure/importfile"
	"github.com/sangkips/cospharm-api/pkg/apperror"
	"github.com/sangkips/cospharm-api/pkg/clock"
	"github.com/sangkips/cospharm-api/pkg/metrics"
	"github.com/sangkips/cospharm-api/pkg/pagination"
)

const unknownUploader = "unknown"

// BulkUploadService applies uploaded price files to the catalog
type BulkUploadService struct {
	productRepo repository.ProductRepository
	historyRepo repository.BulkPriceUpdateRepository
	clock       clock.Clock
	metrics     *metrics.Metrics
	log         zerolog.Logger
}

// NewBulkUploadService creates a new bulk upload service
func NewBulkUploadService(
	productRepo repository.ProductRepository,
	historyRepo repository.BulkPriceUpdateRepository,
	clk clock.Clock,
	m *metrics.Metrics,
	log zerolog.Logger,
) *BulkUploadService {
	return &BulkUploadService{
		productRepo: productRepo,
		historyRepo: historyRepo,
		clock:       clk,
		metrics:     m,
		log:         log.With().Str("component", "bulk_upload").Logger(),
	}
}

// BulkUploadResult summarises one processed file
type BulkUploadResult struct {
	ID               string   `json:"id"`
	FileName         string   `json:"file_name"`
	RecordsProcessed int      `json:"records_processed"`
	RecordsUpdated   int      `json:"records_updated"`
	RecordsFailed    int      `json:"records_failed"`
	Errors           []string `json:"errors"`
}

// ProcessFile parses fileName's content and applies it. A file that cannot
// be parsed, or lacks required headers, is rejected as a whole.
func (s *BulkUploadService) ProcessFile(ctx context.Context, fileName, uploadedBy string, r io.Reader) (*BulkUploadResult, error) {
	rows, err := importfile.Parse(fileName, r)
	if err != nil {
		var missing *importfile.MissingHeadersError
		switch {
		case errors.As(err, &missing):
			return nil, apperror.NewInvalidInputError("file", "Missing required headers: "+strings.Join(missing.Missing, ", "))
		case errors.Is(err, importfile.ErrUnsupportedFormat):
			return nil, apperror.NewInvalidInputError("file", "file must be .csv or .xlsx")
		case errors.Is(err, importfile.ErrEmptyFile):
			return nil, apperror.NewInvalidInputError("file", "file is empty")
		default:
			return nil, apperror.NewInvalidInputError("file", "file could not be read: "+err.Error())
		}
	}
	return s.Process(ctx, fileName, uploadedBy, rows)
}

// Process applies parsed rows one at a time. A failing row is recorded and
// skipped; the remaining rows are still applied.
func (s *BulkUploadService) Process(ctx context.Context, fileName, uploadedBy string, rows []importfile.Row) (*BulkUploadResult, error) {
	result := &BulkUploadResult{FileName: fileName, Errors: []string{}}

	for _, row := range rows {
		result.RecordsProcessed++
		if msg := s.applyRow(ctx, row); msg != "" {
			result.RecordsFailed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", row.Line, msg))
			continue
		}
		result.RecordsUpdated++
	}

	if strings.TrimSpace(uploadedBy) == "" {
		uploadedBy = unknownUploader
	}
	history := &entity.BulkPriceUpdate{
		FileName:         fileName,
		UploadedBy:       uploadedBy,
		RecordsProcessed: result.RecordsProcessed,
		RecordsUpdated:   result.RecordsUpdated,
		RecordsFailed:    result.RecordsFailed,
		CreatedAt:        s.clock.Now(),
	}
	if len(result.Errors) > 0 {
		errorLog := strings.Join(result.Errors, "\n")
		history.ErrorLog = &errorLog
	}

	s.metrics.ObserveBulkRows(result.RecordsUpdated, result.RecordsFailed)

	if err := s.historyRepo.Create(ctx, history); err != nil {
		s.log.Error().Err(err).
			Str("file_name", fileName).
			Int("records_updated", result.RecordsUpdated).
			Msg("bulk upload applied but history write failed")
		return nil, apperror.NewStoreUnavailableError("bulk_upload", err)
	}
	result.ID = history.ID

	s.log.Info().
		Str("file_name", fileName).
		Str("uploaded_by", uploadedBy).
		Int("records_processed", result.RecordsProcessed).
		Int("records_updated", result.RecordsUpdated).
		Int("records_failed", result.RecordsFailed).
		Msg("bulk upload processed")

	return result, nil
}

// applyRow returns the failure message for row, or "" when it was applied
func (s *BulkUploadService) applyRow(ctx context.Context, row importfile.Row) string {
	productID := strings.TrimSpace(row.ProductID)
	if productID == "" {
		return "Missing Product ID"
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err.Error()
	}
	if product == nil {
		return fmt.Sprintf("Product %s not found", productID)
	}

	var patch repository.ProductPatch
	if row.BasePrice != nil {
		price, err := canonicalMoney("base_price", *row.BasePrice)
		if err != nil {
			return "Invalid Base Price"
		}
		patch.BasePrice = &price
	}
	if row.ProductDiscount != nil {
		discount, err := canonicalPercentage("product_discount", *row.ProductDiscount)
		if err != nil {
			return "Invalid Product Discount"
		}
		patch.ProductDiscount = &discount
	}
	if row.BonusPattern != nil {
		pattern := strings.TrimSpace(*row.BonusPattern)
		patch.BonusPattern = &pattern
	}

	if patch.IsEmpty() {
		return ""
	}
	if err := s.productRepo.UpdateFields(ctx, product.ID, patch); err != nil {
		return err.Error()
	}
	return ""
}

// ListUploads returns the most recent upload history entries
func (s *BulkUploadService) ListUploads(ctx context.Context, limit int) ([]entity.BulkPriceUpdate, error) {
	limit = pagination.ClampLimit(limit, 20, 100)
	uploads, err := s.historyRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("bulk_upload", err)
	}
	return uploads, nil
}
