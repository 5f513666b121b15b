package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicestats/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetLabels returns the localized copy of the control panel and result view
	GetLabels(ctx context.Context, input *GetLabelsInput) (*GetLabelsOutput, error)

	// GetResultMessage formats the metrics of a run and comments on them
	GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error)

	// GetTheoryMessage returns the theory reference shown next to the results
	GetTheoryMessage(ctx context.Context, input *GetTheoryMessageInput) (*GetTheoryMessageOutput, error)
}
