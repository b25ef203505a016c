package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"tokenpay-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func cloneWallet(w *domain.Wallet) *domain.Wallet {
	c := *w
	if w.AvailableBalance != nil {
		v := *w.AvailableBalance
		c.AvailableBalance = &v
	}
	return &c
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[w.ID] = cloneWallet(w)
	return nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	return cloneWallet(w), nil
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryWalletRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID, currency string) ([]domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Wallet
	for _, w := range r.wallets {
		if w.UserID == userID && w.Currency == currency && w.IsActive {
			result = append(result, *cloneWallet(w))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].IsDefault != result[j].IsDefault {
			return result[i].IsDefault
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *inMemoryWalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance, available decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.Balance = balance
	av := available
	w.AvailableBalance = &av
	w.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID][]domain.TokenLedgerEntry // per user, append order
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{entries: make(map[uuid.UUID][]domain.TokenLedgerEntry)}
}

func (r *inMemoryLedgerRepo) LockUser(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	// Append serialization comes from the locking transactor.
	return nil
}

func (r *inMemoryLedgerRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.TokenLedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.UserID] = append(r.entries[entry.UserID], *entry)
	return nil
}

func (r *inMemoryLedgerRepo) GetLast(ctx context.Context, userID uuid.UUID) (*domain.TokenLedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.entries[userID]
	if len(list) == 0 {
		return nil, nil
	}
	last := list[len(list)-1]
	return &last, nil
}

func (r *inMemoryLedgerRepo) GetLastInTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.TokenLedgerEntry, error) {
	return r.GetLast(ctx, userID)
}

func (r *inMemoryLedgerRepo) List(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.TokenLedgerEntry, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.entries[userID]
	total := int64(len(list))

	// Newest first, like the SQL view.
	desc := make([]domain.TokenLedgerEntry, len(list))
	for i, e := range list {
		desc[len(list)-1-i] = e
	}

	start := (page - 1) * pageSize
	if start >= len(desc) {
		return []domain.TokenLedgerEntry{}, total, nil
	}
	end := start + pageSize
	if end > len(desc) {
		end = len(desc)
	}
	return desc[start:end], total, nil
}

// all returns every entry in append order, for replay audits.
func (r *inMemoryLedgerRepo) all(userID uuid.UUID) []domain.TokenLedgerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.TokenLedgerEntry, len(r.entries[userID]))
	copy(out, r.entries[userID])
	return out
}

// --- In-Memory Recurring Repo ---

type inMemoryRecurringRepo struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*domain.RecurringPurchase
}

func newInMemoryRecurringRepo() *inMemoryRecurringRepo {
	return &inMemoryRecurringRepo{subs: make(map[uuid.UUID]*domain.RecurringPurchase)}
}

func (r *inMemoryRecurringRepo) Create(ctx context.Context, rec *domain.RecurringPurchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *rec
	r.subs[rec.ID] = &c
	return nil
}

func (r *inMemoryRecurringRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.subs[id]
	if !ok {
		return nil, nil
	}
	c := *rec
	return &c, nil
}

func (r *inMemoryRecurringRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.RecurringPurchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.RecurringPurchase
	for _, rec := range r.subs {
		if rec.UserID == userID {
			result = append(result, *rec)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *inMemoryRecurringRepo) ListDue(ctx context.Context, now time.Time) ([]domain.RecurringPurchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.RecurringPurchase
	for _, rec := range r.subs {
		if rec.Status == domain.RecurringStatusActive && !rec.NextPurchaseDate.After(now) {
			result = append(result, *rec)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].NextPurchaseDate.Before(result[j].NextPurchaseDate)
	})
	return result, nil
}

func (r *inMemoryRecurringRepo) Update(ctx context.Context, rec *domain.RecurringPurchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[rec.ID]; !ok {
		return fmt.Errorf("recurring purchase not found")
	}
	c := *rec
	r.subs[rec.ID] = &c
	return nil
}

// --- In-Memory Purchase Repo ---

type inMemoryPurchaseRepo struct {
	mu        sync.RWMutex
	purchases map[uuid.UUID]*domain.TokenPurchase
}

func newInMemoryPurchaseRepo() *inMemoryPurchaseRepo {
	return &inMemoryPurchaseRepo{purchases: make(map[uuid.UUID]*domain.TokenPurchase)}
}

func (r *inMemoryPurchaseRepo) Create(ctx context.Context, p *domain.TokenPurchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *p
	r.purchases[p.ID] = &c
	return nil
}

func (r *inMemoryPurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TokenPurchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.purchases[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *inMemoryPurchaseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PurchaseStatus, transactionID *uuid.UUID, certificateURL *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.purchases[id]
	if !ok {
		return fmt.Errorf("token purchase not found")
	}
	p.Status = status
	if transactionID != nil {
		p.TransactionID = transactionID
	}
	if certificateURL != nil {
		p.CertificateURL = certificateURL
	}
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.TransactionRecord
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{records: make(map[uuid.UUID]*domain.TransactionRecord)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, rec *domain.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *rec
	r.records[rec.ID] = &c
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	c := *rec
	return &c, nil
}

func (r *inMemoryTransactionRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.TransactionRecord, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.TransactionRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			result = append(result, *rec)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	total := int64(len(result))

	start := (page - 1) * pageSize
	if start >= len(result) {
		return []domain.TransactionRecord{}, total, nil
	}
	end := start + pageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

// --- Locking Transactor ---

// lockingTransactor serializes transactions with one mutex, standing in for
// the row and advisory locks a real database provides.
type lockingTransactor struct {
	mu sync.Mutex
}

func newLockingTransactor() *lockingTransactor {
	return &lockingTransactor{}
}

func (t *lockingTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	tx := &lockedTx{}
	tx.release = func() { t.mu.Unlock() }
	return tx, nil
}

// lockedTx is a no-op pgx.Tx that releases the transactor lock exactly once,
// on Commit or Rollback, whichever comes first.
type lockedTx struct {
	once    sync.Once
	release func()
}

func (t *lockedTx) done() {
	t.once.Do(t.release)
}

func (t *lockedTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *lockedTx) Commit(ctx context.Context) error          { t.done(); return nil }
func (t *lockedTx) Rollback(ctx context.Context) error        { t.done(); return nil }
func (t *lockedTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *lockedTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *lockedTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *lockedTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *lockedTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *lockedTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *lockedTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *lockedTx) Conn() *pgx.Conn { return nil }
