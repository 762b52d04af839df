package usecase

import (
	"context"

	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
)

func (x *UseCase) WaitRateLimitForTest(ctx context.Context, client interfaces.GitHub) error {
	return x.waitRateLimit(ctx, client)
}

var DeleteMessageForTest = deleteMessage
