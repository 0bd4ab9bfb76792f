package dataset

import (
	"context"
)

type DatasetService interface {
	// Export snapshots the whole ledger: every employee configuration with
	// loan state, and every attendance month in the year-dimension tree.
	Export(ctx context.Context) (Document, error)

	// Import replaces the registry and all attendance wholesale. Legacy
	// documents without the year dimension are applied to defaultYear.
	Import(ctx context.Context, doc Document, defaultYear int) error
}
