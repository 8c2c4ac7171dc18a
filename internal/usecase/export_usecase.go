package usecase

import (
	"context"
	"time"

	"github.com/finbook/finbook/internal/domain"
	"github.com/finbook/finbook/internal/export"
)

// ExportUseCase produces the downloadable spreadsheet for an owner's full
// (unfiltered) collection.
type ExportUseCase struct {
	repo       EntryRepository
	serializer *export.Serializer
	now        func() time.Time
}

// NewExportUseCase creates a new ExportUseCase.
func NewExportUseCase(repo EntryRepository, serializer *export.Serializer) *ExportUseCase {
	return &ExportUseCase{
		repo:       repo,
		serializer: serializer,
		now:        time.Now,
	}
}

// ExportResult is a rendered spreadsheet ready for download.
type ExportResult struct {
	Data        []byte
	Filename    string
	ContentType string
	Rows        int
}

// Export loads the full collection and serializes it. Unlike list views,
// export is user-invoked, so a load failure here is surfaced rather than
// degraded to an empty file. Zero entries still produce a deterministic
// header-only sheet.
func (uc *ExportUseCase) Export(ctx context.Context, session domain.Session) (*ExportResult, error) {
	entries, err := uc.repo.Load(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	domain.SortEntries(entries)

	data, err := uc.serializer.Serialize(entries)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Data:        data,
		Filename:    export.Filename(uc.now()),
		ContentType: export.ContentType,
		Rows:        len(entries),
	}, nil
}
