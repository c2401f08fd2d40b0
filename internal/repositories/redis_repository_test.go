package repository_test

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/homebase-labs/seller-marketplace/internal/config"
	repository "github.com/homebase-labs/seller-marketplace/internal/repositories"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rateLimitKey = "write_attempts:seller-1"

func setupRateLimiter(t *testing.T, maxAttempts int64) (repository.RateLimitRepository, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.Config{RateConfig: config.RateConfig{MaxAttempts: maxAttempts, WindowSize: time.Minute}}

	return repository.NewRateLimitRepo(client, cfg), mock
}

// expectAttempt queues the pipeline of one rate-limit check. The trim bound
// and the added member are time-derived, so those args are matched loosely;
// capture receives the member actually added.
func expectAttempt(mock redismock.ClientMock, attempts int64, capture func(member any)) {
	anyArgs := func(expected, actual []interface{}) error { return nil }

	mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(rateLimitKey, "0", "0").SetVal(0)
	mock.CustomMatch(func(expected, actual []interface{}) error {
		if capture != nil {
			capture(actual[len(actual)-1])
		}

		return nil
	}).ExpectZAdd(rateLimitKey, redis.Z{}).SetVal(1)
	mock.ExpectZCard(rateLimitKey).SetVal(attempts)
	mock.ExpectExpire(rateLimitKey, time.Minute).SetVal(true)
}

func TestCheckWriteRateLimit(t *testing.T) {
	t.Run("Allows writes under the limit", func(t *testing.T) {
		// Arrange
		limiter, mock := setupRateLimiter(t, 3)
		expectAttempt(mock, 1, nil)

		// Act
		allowed, retryAfter, err := limiter.CheckWriteRateLimit(t.Context(), "seller-1")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Attempts in the same window land as distinct members", func(t *testing.T) {
		// Arrange
		limiter, mock := setupRateLimiter(t, 3)

		var members []any

		capture := func(member any) { members = append(members, member) }

		expectAttempt(mock, 1, capture)
		expectAttempt(mock, 2, capture)

		// Act
		_, _, err1 := limiter.CheckWriteRateLimit(t.Context(), "seller-1")
		_, _, err2 := limiter.CheckWriteRateLimit(t.Context(), "seller-1")

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		require.Len(t, members, 2)
		assert.NotEqual(t, members[0], members[1])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Blocks over the limit with a full-window retry hint", func(t *testing.T) {
		// Arrange: oldest entry unavailable, the hint degrades to the window size
		limiter, mock := setupRateLimiter(t, 2)
		expectAttempt(mock, 2, nil)
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{Key: rateLimitKey, Start: 0, Stop: 0}).
			SetVal([]redis.Z{})

		// Act
		allowed, retryAfter, err := limiter.CheckWriteRateLimit(t.Context(), "seller-1")

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 60, retryAfter)
	})

	t.Run("Expired oldest entry clamps the retry hint at zero", func(t *testing.T) {
		// Arrange
		limiter, mock := setupRateLimiter(t, 2)
		expectAttempt(mock, 2, nil)
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{Key: rateLimitKey, Start: 0, Stop: 0}).
			SetVal([]redis.Z{{Score: 0, Member: int64(0)}})

		// Act
		allowed, retryAfter, err := limiter.CheckWriteRateLimit(t.Context(), "seller-1")

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, retryAfter)
	})
}
