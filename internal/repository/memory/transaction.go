package memory

import "context"

// TransactionManager для памяти выполняет функцию напрямую:
// операции над Store атомарны на уровне мьютекса
type TransactionManager struct{}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// RunInTransaction выполняет функцию без транзакционных гарантий
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
