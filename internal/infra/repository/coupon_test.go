//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"shop-api/internal/infra"
	"shop-api/internal/infra/repository"
	sqlc "shop-api/internal/infra/sqlc/generated"
	"shop-api/tests/common/builder"
	repositorymock "shop-api/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Coupon Tests
// =============================================================================

func TestCouponRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockCouponWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: coupon created successfully",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateCoupon(ctx, tx, gomock.Any()).Return(builder.NewCouponBuilder().BuildInfra(), nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateCoupon(ctx, tx, gomock.Any()).Return(sqlc.Coupons{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate coupon code",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateCoupon(ctx, tx, gomock.Any()).Return(sqlc.Coupons{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries, mockDB)

			domainCoupon, err := builder.NewCouponBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			snapshot, actualError := repo.Create(ctx, mockDB, domainCoupon)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, snapshot)
			} else {
				require.NoError(t, actualError)
				require.NotNil(t, snapshot)
				assert.Equal(t, "SAVE20", snapshot.Code)
			}
		})
	}
}

// =============================================================================
// Consume Coupon Tests
// =============================================================================

func TestCouponRepository_Consume(t *testing.T) {
	ctx := context.Background()
	code := "SAVE20"

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockCouponWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: coupon consumed and counter incremented",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				row := builder.NewCouponBuilder().WithUsedCount(1).BuildInfra()
				mock.EXPECT().ConsumeCoupon(ctx, tx, code).Return(row, nil)
			},
			expectedError: false,
		},
		{
			name: "error: no consumable coupon matches the code",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ConsumeCoupon(ctx, tx, code).Return(sqlc.Coupons{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ConsumeCoupon(ctx, tx, code).Return(sqlc.Coupons{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			snapshot, actualError := repo.Consume(ctx, mockDB, code)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, snapshot)
			} else {
				require.NoError(t, actualError)
				require.NotNil(t, snapshot)
				assert.Equal(t, code, snapshot.Code)
				assert.Equal(t, int32(1), snapshot.UsedCount)
			}
		})
	}
}
