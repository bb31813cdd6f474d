package receiving

import (
	"context"
	"fmt"
	"testing"

	"receiving-manager/feature/receiving/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func commitLines() []models.ConferenceLine {
	return []models.ConferenceLine{
		{DocumentID: 10, ProductID: 1, ExpectedQuantity: 10, CountedQuantity: 10, Status: models.LineMatched},
		{DocumentID: 10, ProductID: 2, ExpectedQuantity: 5, CountedQuantity: 3, Status: models.LineDivergent},
	}
}

func TestCommit_AppliesAllDeltasAndStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	committer := NewStockCommitter(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `products` SET `stock_quantity`=stock_quantity").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `products` SET `stock_quantity`=stock_quantity").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `receipt_documents` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := committer.Commit(context.Background(), 10, models.DocumentCompletedWithDivergence, commitLines())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_RollsBackOnStockFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	committer := NewStockCommitter(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `products` SET `stock_quantity`=stock_quantity").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `products` SET `stock_quantity`=stock_quantity").
		WillReturnError(fmt.Errorf("connection lost"))
	mock.ExpectRollback()

	err := committer.Commit(context.Background(), 10, models.DocumentCompletedWithDivergence, commitLines())
	require.ErrorIs(t, err, ErrCommitFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_RollsBackWhenProductMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	committer := NewStockCommitter(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `products` SET `stock_quantity`=stock_quantity").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := committer.Commit(context.Background(), 10, models.DocumentCompleted, commitLines())
	require.ErrorIs(t, err, ErrCommitFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_RollsBackWhenDocumentNoLongerInProgress(t *testing.T) {
	db, mock := setupMockDB(t)
	committer := NewStockCommitter(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `products` SET `stock_quantity`=stock_quantity").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `products` SET `stock_quantity`=stock_quantity").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Status guard: a concurrent finalize already moved the document
	mock.ExpectExec("UPDATE `receipt_documents` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := committer.Commit(context.Background(), 10, models.DocumentCompleted, commitLines())
	require.ErrorIs(t, err, ErrCommitFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_RejectsNonTerminalStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	committer := NewStockCommitter(db, zap.NewNop())

	err := committer.Commit(context.Background(), 10, models.DocumentInProgress, commitLines())
	require.Error(t, err)
	// Nothing was sent to the database
	assert.NoError(t, mock.ExpectationsWereMet())
}
