package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/javohir/hamyon/internal/domain"
	"github.com/javohir/hamyon/internal/infrastructure/metrics"
)

// Ledger is the single source of truth for transactions, categories and
// settings. All reads are pure functions over the in-memory snapshot; every
// mutation recomputes the derived balance synchronously and flushes the
// affected key to the cloud store asynchronously. Persistence failures are
// logged and dropped: the bot backend, not this store, is durable.
type Ledger struct {
	store    CloudStore
	notifier BotNotifier
	clock    Clock
	logger   zerolog.Logger
	metrics  *metrics.Metrics

	mu           sync.RWMutex
	transactions []domain.Transaction
	categories   []domain.Category
	settings     domain.Settings
	balance      decimal.Decimal
	lastID       int64

	flush sync.WaitGroup
}

// NewLedger creates an empty Ledger. Call Load before serving queries.
func NewLedger(store CloudStore, notifier BotNotifier, clock Clock, logger zerolog.Logger) *Ledger {
	return &Ledger{
		store:    store,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
		balance:  decimal.Zero,
		settings: domain.DefaultSettings(),
	}
}

// WithMetrics attaches Prometheus instrumentation. Optional; a nil receiver
// field simply records nothing.
func (l *Ledger) WithMetrics(m *metrics.Metrics) *Ledger {
	l.metrics = m
	return l
}

// Load fetches categories, transactions and settings from the cloud store.
// Each key is independently optional; absent or malformed values fall back
// to defaults and are never surfaced as errors. The returned error covers
// transport failures only.
func (l *Ledger) Load(ctx context.Context) error {
	start := time.Now()

	categories := domain.DefaultCategories()
	if raw, ok, err := l.store.Get(ctx, KeyCategories); err != nil {
		return err
	} else if ok {
		var loaded []domain.Category
		if jsonErr := json.Unmarshal(raw, &loaded); jsonErr != nil || len(loaded) == 0 {
			l.logger.Warn().Err(jsonErr).Msg("persisted categories unusable, using defaults")
		} else {
			categories = loaded
		}
	}

	var transactions []domain.Transaction
	if raw, ok, err := l.store.Get(ctx, KeyTransactions); err != nil {
		return err
	} else if ok {
		if jsonErr := json.Unmarshal(raw, &transactions); jsonErr != nil {
			l.logger.Warn().Err(jsonErr).Msg("persisted transactions unusable, starting empty")
			transactions = nil
		}
	}

	settings := domain.DefaultSettings()
	if raw, ok, err := l.store.Get(ctx, KeySettings); err != nil {
		return err
	} else if ok {
		settings = parseSettings(raw, l.logger)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.categories = categories
	l.transactions = transactions
	l.settings = settings
	l.recalcBalance()

	l.lastID = 0
	for _, tx := range l.transactions {
		if tx.ID > l.lastID {
			l.lastID = tx.ID
		}
	}

	if l.metrics != nil {
		l.metrics.StoreLoadDuration.Observe(time.Since(start).Seconds())
	}

	l.logger.Info().
		Int("transactions", len(l.transactions)).
		Int("categories", len(l.categories)).
		Str("currency", string(l.settings.Currency)).
		Msg("ledger loaded")

	return nil
}

// parseSettings tolerates partial or malformed settings JSON. An absent
// weeklyDigest field means enabled, matching what the bot always wrote.
func parseSettings(raw []byte, logger zerolog.Logger) domain.Settings {
	var stored struct {
		Currency     domain.Currency `json:"currency"`
		WeeklyDigest *bool           `json:"weeklyDigest"`
	}

	settings := domain.DefaultSettings()
	if err := json.Unmarshal(raw, &stored); err != nil {
		logger.Warn().Err(err).Msg("persisted settings unusable, using defaults")
		return settings
	}

	if domain.ValidateCurrency(stored.Currency) == nil {
		settings.Currency = stored.Currency
	}
	if stored.WeeklyDigest != nil {
		settings.WeeklyDigest = *stored.WeeklyDigest
	}

	return settings
}

// AddTransactionInput carries a new transaction. Amount is the final signed
// value: the UI negates user-entered magnitudes for expenses before calling.
type AddTransactionInput struct {
	Amount      decimal.Decimal
	CategoryID  int64
	Description string
	Date        *time.Time
}

// AddTransaction records a transaction, snapshots the category display
// fields, recomputes the balance and schedules persistence plus a bot
// notification. Returns the created transaction.
func (l *Ledger) AddTransaction(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	l.mu.Lock()

	tx := domain.Transaction{
		ID:           l.nextID(),
		Amount:       input.Amount,
		CategoryID:   input.CategoryID,
		CategoryIcon: domain.FallbackIcon,
		Description:  input.Description,
		Source:       domain.SourceWebApp,
		Date:         l.clock.Now(),
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if cat := l.findCategory(input.CategoryID); cat != nil {
		tx.CategoryName = cat.Name
		tx.CategoryIcon = cat.Icon
	}

	l.transactions = append(l.transactions, tx)
	l.recalcBalance()
	l.persistTransactionsLocked()
	l.mu.Unlock()

	if l.metrics != nil {
		l.metrics.TransactionsAdded.Inc()
		amount, _ := tx.Amount.Abs().Float64()
		l.metrics.TransactionAmount.Observe(amount)
	}

	l.notify(map[string]any{
		"action":      "add_transaction",
		"amount":      tx.Amount,
		"category_id": tx.CategoryID,
		"description": tx.Description,
		"date":        tx.Date.Format(time.RFC3339),
	})

	return &tx, nil
}

// DeleteTransaction removes the transaction with the given id. Unknown ids
// are a no-op, not an error; the deletion is still reported to the bot only
// when something was actually removed.
func (l *Ledger) DeleteTransaction(ctx context.Context, id int64) {
	l.mu.Lock()

	kept := l.transactions[:0]
	removed := false
	for _, tx := range l.transactions {
		if tx.ID == id {
			removed = true
			continue
		}
		kept = append(kept, tx)
	}
	l.transactions = kept

	if !removed {
		l.mu.Unlock()
		return
	}

	l.recalcBalance()
	l.persistTransactionsLocked()
	l.mu.Unlock()

	if l.metrics != nil {
		l.metrics.TransactionsDeleted.Inc()
	}

	l.notify(map[string]any{
		"action":         "delete_transaction",
		"transaction_id": id,
	})
}

// ListTransactions returns all transactions, most recent date first.
// Equal dates keep their original insertion order.
func (l *Ledger) ListTransactions() []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sortedLocked()
}

// Recent returns the first limit transactions of the date-descending order.
func (l *Ledger) Recent(limit int) []domain.Transaction {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	list := l.ListTransactions()
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// Filtered returns transactions passing the direction filter and a
// case-insensitive substring match against description or the category
// name snapshot. An empty search matches everything.
func (l *Ledger) Filtered(filter domain.Filter, search string) []domain.Transaction {
	list := l.ListTransactions()
	query := strings.ToLower(search)

	result := make([]domain.Transaction, 0, len(list))
	for _, tx := range list {
		if !filter.Matches(&tx) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(tx.Description), query) &&
			!strings.Contains(strings.ToLower(tx.CategoryName), query) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// Balance returns the cached derived sum of all transaction amounts.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balance
}

// Categories returns the current category list.
func (l *Ledger) Categories() []domain.Category {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.Category(nil), l.categories...)
}

// CategoriesByType returns categories applicable to the given type,
// including the catch-all "both" entries.
func (l *Ledger) CategoriesByType(t domain.CategoryType) []domain.Category {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]domain.Category, 0, len(l.categories))
	for _, c := range l.categories {
		if c.AppliesTo(t) {
			result = append(result, c)
		}
	}
	return result
}

// UpdateCategory replaces the category with the same id and persists the
// list. Existing transactions keep their creation-time snapshots. Unknown
// ids are a no-op.
func (l *Ledger) UpdateCategory(ctx context.Context, cat domain.Category) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.categories {
		if l.categories[i].ID == cat.ID {
			l.categories[i] = cat
			l.persistLocked(KeyCategories, l.categories)
			return
		}
	}
}

// Settings returns the current settings snapshot.
func (l *Ledger) Settings() domain.Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settings
}

// SetCurrency updates the display currency and persists the settings.
func (l *Ledger) SetCurrency(ctx context.Context, code domain.Currency) error {
	if err := domain.ValidateCurrency(code); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.settings.Currency = code
	l.persistLocked(KeySettings, l.settings)
	return nil
}

// SetWeeklyDigest toggles the weekly digest and persists the settings.
func (l *Ledger) SetWeeklyDigest(ctx context.Context, enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settings.WeeklyDigest = enabled
	l.persistLocked(KeySettings, l.settings)
}

// RequestExport asks the bot to produce an export in the given format.
func (l *Ledger) RequestExport(ctx context.Context, format string) {
	if l.metrics != nil {
		l.metrics.ExportsRequested.WithLabelValues(format).Inc()
	}

	l.notify(map[string]any{
		"action": "export",
		"format": format,
	})
}

// Flush waits for in-flight persistence writes and notifications. Callers
// of mutations never wait; this exists for graceful shutdown and tests.
func (l *Ledger) Flush() {
	l.flush.Wait()
}

// nextID derives a unique id from the current timestamp, bumping past the
// previous id when two transactions land in the same millisecond.
// Caller holds l.mu.
func (l *Ledger) nextID() int64 {
	id := l.clock.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// findCategory returns the category with the given id, or nil.
// Caller holds l.mu.
func (l *Ledger) findCategory(id int64) *domain.Category {
	for i := range l.categories {
		if l.categories[i].ID == id {
			return &l.categories[i]
		}
	}
	return nil
}

// recalcBalance rederives the balance from scratch. O(n) per mutation is
// fine at this data scale and keeps the invariant impossible to drift.
// Caller holds l.mu.
func (l *Ledger) recalcBalance() {
	sum := decimal.Zero
	for _, tx := range l.transactions {
		sum = sum.Add(tx.Amount)
	}
	l.balance = sum
}

// sortedLocked returns a date-descending copy. Caller holds l.mu (read).
func (l *Ledger) sortedLocked() []domain.Transaction {
	list := append([]domain.Transaction(nil), l.transactions...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
	return list
}

// persistTransactionsLocked schedules a write of the full transaction list.
// Caller holds l.mu.
func (l *Ledger) persistTransactionsLocked() {
	l.persistLocked(KeyTransactions, l.transactions)
}

// persistLocked marshals value while the lock is held, then writes it out
// in the background. Write failures are logged and dropped: at-most-once
// durability, the in-memory state stays authoritative for the session.
// Caller holds l.mu.
func (l *Ledger) persistLocked(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		l.logger.Error().Err(err).Str("key", key).Msg("marshal for cloud store failed")
		return
	}

	l.flush.Add(1)
	go func() {
		defer l.flush.Done()
		if err := l.store.Set(context.Background(), key, data); err != nil {
			l.logger.Warn().Err(err).Str("key", key).Msg("cloud store write dropped")
			if l.metrics != nil {
				l.metrics.StoreWriteErrors.WithLabelValues(key).Inc()
			}
			return
		}
		if l.metrics != nil {
			l.metrics.StoreWrites.WithLabelValues(key).Inc()
		}
	}()
}

// notify sends a payload to the bot without waiting for the outcome.
func (l *Ledger) notify(payload map[string]any) {
	action, _ := payload["action"].(string)

	l.flush.Add(1)
	go func() {
		defer l.flush.Done()
		if err := l.notifier.Notify(context.Background(), payload); err != nil {
			l.logger.Warn().Err(err).Str("action", action).Msg("bot notification dropped")
			if l.metrics != nil {
				l.metrics.BotErrors.Inc()
			}
			return
		}
		if l.metrics != nil {
			l.metrics.BotNotifications.WithLabelValues(action).Inc()
		}
	}()
}
