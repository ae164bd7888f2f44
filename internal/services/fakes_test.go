package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"lottopay/internal/config"
	"lottopay/internal/models/db_models"
	"lottopay/pkg/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		TicketPriceMinor:   1,
		RewardAmountMinor:  100000,
		BasicTicketCount:   1,
		PremiumTicketCount: 3,
	}
}

// fakeStore is an in-memory stand-in for the Postgres-backed repositories.
// One instance implements all three repository interfaces, mirroring the
// shared database the real ones point at.
type fakeStore struct {
	mu sync.Mutex

	subs    map[string]*db_models.Subscription
	entries []*db_models.Entry
	byTx    map[string]*db_models.Entry
	numbers map[string]bool
	winners []*db_models.Winner
	epoch   int64
	seq     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		subs:    make(map[string]*db_models.Subscription),
		byTx:    make(map[string]*db_models.Entry),
		numbers: make(map[string]bool),
		epoch:   1,
	}
}

func (f *fakeStore) nextSeq() int64 {
	f.seq++
	return f.seq
}

// SubscriptionRepository

func (f *fakeStore) Create(ctx context.Context, sub *db_models.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[sub.UserID]; ok {
		return utils.ErrAlreadySubscribed
	}
	sub.ID = uuid.New()
	sub.CreatedAt = f.nextSeq()
	f.subs[sub.UserID] = sub
	return nil
}

func (f *fakeStore) DeleteByUserID(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[userID]; !ok {
		return utils.ErrNotSubscribed
	}
	delete(f.subs, userID)
	return nil
}

func (f *fakeStore) FindByUserID(ctx context.Context, userID string) (*db_models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subs[userID], nil
}

// EntryRepository

func (f *fakeStore) CreateWithTickets(ctx context.Context, entry *db_models.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byTx[entry.TransactionID]; ok {
		return utils.ErrDuplicateEntry
	}
	for _, t := range entry.Tickets {
		if f.numbers[t.Number] {
			return utils.ErrNumberTaken
		}
	}

	entry.ID = uuid.New()
	entry.CreatedAt = f.nextSeq()
	entry.Epoch = f.epoch
	for i := range entry.Tickets {
		entry.Tickets[i].ID = uuid.New()
		entry.Tickets[i].EntryID = entry.ID
		entry.Tickets[i].UserID = entry.UserID
		entry.Tickets[i].Position = i
		entry.Tickets[i].CreatedAt = entry.CreatedAt
		f.numbers[entry.Tickets[i].Number] = true
	}
	f.entries = append(f.entries, entry)
	f.byTx[entry.TransactionID] = entry
	return nil
}

func (f *fakeStore) FindByTransactionID(ctx context.Context, transactionID string) (*db_models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byTx[transactionID], nil
}

func (f *fakeStore) ListByUserID(ctx context.Context, userID string) ([]db_models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []db_models.Entry
	for _, e := range f.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (f *fakeStore) ListTickets(ctx context.Context) ([]db_models.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flattenLocked(), nil
}

func (f *fakeStore) flattenLocked() []db_models.Ticket {
	var tickets []db_models.Ticket
	for _, e := range f.entries {
		tickets = append(tickets, e.Tickets...)
	}
	return tickets
}

func (f *fakeStore) NumberExists(ctx context.Context, number string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.numbers[number], nil
}

func (f *fakeStore) DeleteUpToEpoch(ctx context.Context, epoch int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*db_models.Entry
	var removed int64
	for _, e := range f.entries {
		if e.Epoch <= epoch {
			removed++
			delete(f.byTx, e.TransactionID)
			continue
		}
		kept = append(kept, e)
	}
	f.entries = kept
	return removed, nil
}

func (f *fakeStore) Stats(ctx context.Context) (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make(map[string]bool)
	var tickets int64
	for _, e := range f.entries {
		users[e.UserID] = true
		tickets += int64(len(e.Tickets))
	}
	return int64(len(users)), tickets, nil
}

// DrawRepository

func (f *fakeStore) SelectWinner(ctx context.Context, pick func(n int) int) (*db_models.Winner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tickets := f.flattenLocked()
	if len(tickets) == 0 {
		return nil, utils.ErrNoEligibleEntries
	}
	selected := tickets[pick(len(tickets))]
	return f.recordWinnerLocked(selected), nil
}

func (f *fakeStore) SelectWinnerByNumber(ctx context.Context, number string) (*db_models.Winner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.flattenLocked() {
		if t.Number == number {
			return f.recordWinnerLocked(t), nil
		}
	}
	return nil, utils.ErrNumberNotFound
}

func (f *fakeStore) recordWinnerLocked(t db_models.Ticket) *db_models.Winner {
	w := &db_models.Winner{
		UserID:        t.UserID,
		WinningNumber: t.Number,
		Epoch:         f.epoch,
	}
	w.ID = uuid.New()
	w.CreatedAt = f.nextSeq()
	f.winners = append(f.winners, w)
	f.epoch++
	return w
}

func (f *fakeStore) LatestWinner(ctx context.Context) (*db_models.Winner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.winners) == 0 {
		return nil, nil
	}
	return f.winners[len(f.winners)-1], nil
}

func (f *fakeStore) ClaimByUserID(ctx context.Context, userID string) (*db_models.Winner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.winners) - 1; i >= 0; i-- {
		w := f.winners[i]
		if w.UserID == userID && !w.Claimed {
			w.Claimed = true
			claimedAt := f.nextSeq()
			w.ClaimedAt = &claimedAt
			return w, nil
		}
	}
	return nil, nil
}

// scriptSource replays a fixed sequence of values, then keeps counting up.
// It makes both number generation and index picks fully predictable.
type scriptSource struct {
	mu   sync.Mutex
	vals []int64
	next int64
}

func (s *scriptSource) take(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var v int64
	if len(s.vals) > 0 {
		v = s.vals[0]
		s.vals = s.vals[1:]
	} else {
		v = s.next
		s.next++
	}
	return v % n
}

func (s *scriptSource) Intn(n int) int       { return int(s.take(int64(n))) }
func (s *scriptSource) Int63n(n int64) int64 { return s.take(n) }
