package indexer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	_ "modernc.org/sqlite"
)

// Payment kinds stored by the indexer.
const (
	PaymentBuild  = "build"
	PaymentCreate = "create"
	PaymentReady  = "ready"
)

// Settlement kinds stored by the indexer.
const (
	SettlementSettle     = "settle"
	SettlementShare      = "share"
	SettlementDistribute = "distribute"
)

// Payment is a single coupon payment recorded by the game contract. Kind is
// one of the Payment* constants. Detail holds the map level for builds and
// the space mode for bookings, MapID is empty for builds.
type Payment struct {
	TxHash     util.Uint256
	PaymentID  string
	Kind       string
	Detail     string
	MapID      string
	Payer      util.Uint160
	Amount     int64
	IncludeFee int64
	Height     uint32
	BlockTime  uint64
}

// Upload is a single map completion report. UseTime below zero marks an
// unfinished run.
type Upload struct {
	TxHash    util.Uint256
	MapID     string
	Player    util.Uint160
	UseTime   int64
	Height    uint32
	BlockTime uint64
}

// Settlement is a single reward movement of a map settlement. Kind is one of
// the Settlement* constants, Account is zero for the protocol share.
type Settlement struct {
	TxHash    util.Uint256
	MapID     string
	Kind      string
	Account   util.Uint160
	Amount    int64
	Height    uint32
	BlockTime uint64
}

// CouponTransfer is a single coupon movement. From is zero for mints, To is
// zero for burns.
type CouponTransfer struct {
	TxHash    util.Uint256
	From      util.Uint160
	To        util.Uint160
	Amount    int64
	Details   []byte
	Height    uint32
	BlockTime uint64
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS watermark (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    height INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
    tx_hash TEXT NOT NULL,
    payment_id TEXT NOT NULL,
    kind TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT '',
    map_id TEXT NOT NULL DEFAULT '',
    payer TEXT NOT NULL,
    amount INTEGER NOT NULL,
    include_fee INTEGER NOT NULL,
    height INTEGER NOT NULL,
    block_time INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_payments_payment_id ON payments(payment_id);

CREATE TABLE IF NOT EXISTS uploads (
    tx_hash TEXT NOT NULL,
    map_id TEXT NOT NULL,
    player TEXT NOT NULL,
    use_time INTEGER NOT NULL,
    height INTEGER NOT NULL,
    block_time INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_uploads_map_id ON uploads(map_id);

CREATE TABLE IF NOT EXISTS settlements (
    tx_hash TEXT NOT NULL,
    map_id TEXT NOT NULL,
    kind TEXT NOT NULL,
    account TEXT NOT NULL DEFAULT '',
    amount INTEGER NOT NULL,
    height INTEGER NOT NULL,
    block_time INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_settlements_map_id ON settlements(map_id);

CREATE TABLE IF NOT EXISTS coupon_transfers (
    tx_hash TEXT NOT NULL,
    sender TEXT NOT NULL DEFAULT '',
    receiver TEXT NOT NULL DEFAULT '',
    amount INTEGER NOT NULL,
    details BLOB,
    height INTEGER NOT NULL,
    block_time INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_coupon_transfers_receiver ON coupon_transfers(receiver);
`

// Store provides SQLite-backed persistence for indexed contract activity.
type Store struct {
	sqlDB *sql.DB
}

// OpenStore opens and migrates an indexer SQLite store at the provided path.
func OpenStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Height returns the last fully processed block height. The second value is
// false if no block has been processed yet.
func (s *Store) Height(ctx context.Context) (uint32, bool, error) {
	row := s.sqlDB.QueryRowContext(ctx, `SELECT height FROM watermark WHERE id = 1`)

	var height int64
	err := row.Scan(&height)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get watermark: %w", err)
	}
	return uint32(height), true, nil
}

// SaveHeight upserts the last fully processed block height.
func (s *Store) SaveHeight(ctx context.Context, height uint32) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO watermark (id, height) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET height = excluded.height`,
		int64(height),
	)
	if err != nil {
		return fmt.Errorf("save watermark: %w", err)
	}
	return nil
}

// PutPayment persists a payment record.
func (s *Store) PutPayment(ctx context.Context, p Payment) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO payments (tx_hash, payment_id, kind, detail, map_id, payer, amount, include_fee, height, block_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.TxHash.StringLE(),
		p.PaymentID,
		p.Kind,
		p.Detail,
		p.MapID,
		encodeAccount(p.Payer),
		p.Amount,
		p.IncludeFee,
		int64(p.Height),
		int64(p.BlockTime),
	)
	if err != nil {
		return fmt.Errorf("put payment: %w", err)
	}
	return nil
}

// Payments returns all recorded payments with the given payment ID ordered by
// block height.
func (s *Store) Payments(ctx context.Context, paymentID string) ([]Payment, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT tx_hash, payment_id, kind, detail, map_id, payer, amount, include_fee, height, block_time
		 FROM payments WHERE payment_id = ? ORDER BY height`,
		paymentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var (
			p             Payment
			txHash, payer string
			height, bTime int64
		)
		if err := rows.Scan(&txHash, &p.PaymentID, &p.Kind, &p.Detail, &p.MapID, &payer, &p.Amount, &p.IncludeFee, &height, &bTime); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if p.TxHash, err = util.Uint256DecodeStringLE(txHash); err != nil {
			return nil, fmt.Errorf("decode payment tx hash: %w", err)
		}
		if p.Payer, err = decodeAccount(payer); err != nil {
			return nil, fmt.Errorf("decode payer: %w", err)
		}
		p.Height = uint32(height)
		p.BlockTime = uint64(bTime)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// PutUpload persists an upload record.
func (s *Store) PutUpload(ctx context.Context, u Upload) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO uploads (tx_hash, map_id, player, use_time, height, block_time)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.TxHash.StringLE(),
		u.MapID,
		encodeAccount(u.Player),
		u.UseTime,
		int64(u.Height),
		int64(u.BlockTime),
	)
	if err != nil {
		return fmt.Errorf("put upload: %w", err)
	}
	return nil
}

// Uploads returns all recorded completion reports for the given map ordered
// by block height.
func (s *Store) Uploads(ctx context.Context, mapID string) ([]Upload, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT tx_hash, map_id, player, use_time, height, block_time
		 FROM uploads WHERE map_id = ? ORDER BY height`,
		mapID,
	)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	var uploads []Upload
	for rows.Next() {
		var (
			u              Upload
			txHash, player string
			height, bTime  int64
		)
		if err := rows.Scan(&txHash, &u.MapID, &player, &u.UseTime, &height, &bTime); err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		if u.TxHash, err = util.Uint256DecodeStringLE(txHash); err != nil {
			return nil, fmt.Errorf("decode upload tx hash: %w", err)
		}
		if u.Player, err = decodeAccount(player); err != nil {
			return nil, fmt.Errorf("decode player: %w", err)
		}
		u.Height = uint32(height)
		u.BlockTime = uint64(bTime)
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

// PutSettlement persists a settlement record.
func (s *Store) PutSettlement(ctx context.Context, st Settlement) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO settlements (tx_hash, map_id, kind, account, amount, height, block_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		st.TxHash.StringLE(),
		st.MapID,
		st.Kind,
		encodeAccount(st.Account),
		st.Amount,
		int64(st.Height),
		int64(st.BlockTime),
	)
	if err != nil {
		return fmt.Errorf("put settlement: %w", err)
	}
	return nil
}

// Settlements returns all recorded reward movements for the given map ordered
// by block height.
func (s *Store) Settlements(ctx context.Context, mapID string) ([]Settlement, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT tx_hash, map_id, kind, account, amount, height, block_time
		 FROM settlements WHERE map_id = ? ORDER BY height`,
		mapID,
	)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []Settlement
	for rows.Next() {
		var (
			st              Settlement
			txHash, account string
			height, bTime   int64
		)
		if err := rows.Scan(&txHash, &st.MapID, &st.Kind, &account, &st.Amount, &height, &bTime); err != nil {
			return nil, fmt.Errorf("scan settlement: %w", err)
		}
		if st.TxHash, err = util.Uint256DecodeStringLE(txHash); err != nil {
			return nil, fmt.Errorf("decode settlement tx hash: %w", err)
		}
		if st.Account, err = decodeAccount(account); err != nil {
			return nil, fmt.Errorf("decode settlement account: %w", err)
		}
		st.Height = uint32(height)
		st.BlockTime = uint64(bTime)
		settlements = append(settlements, st)
	}
	return settlements, rows.Err()
}

// PutCouponTransfer persists a coupon movement record.
func (s *Store) PutCouponTransfer(ctx context.Context, t CouponTransfer) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO coupon_transfers (tx_hash, sender, receiver, amount, details, height, block_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.TxHash.StringLE(),
		encodeAccount(t.From),
		encodeAccount(t.To),
		t.Amount,
		t.Details,
		int64(t.Height),
		int64(t.BlockTime),
	)
	if err != nil {
		return fmt.Errorf("put coupon transfer: %w", err)
	}
	return nil
}

// MintedSupply returns the coupon supply expected from the indexed mint and
// burn history.
func (s *Store) MintedSupply(ctx context.Context) (int64, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(CASE WHEN sender = '' THEN amount ELSE 0 END), 0)
		      - COALESCE(SUM(CASE WHEN receiver = '' THEN amount ELSE 0 END), 0)
		 FROM coupon_transfers`,
	)

	var supply int64
	if err := row.Scan(&supply); err != nil {
		return 0, fmt.Errorf("sum minted supply: %w", err)
	}
	return supply, nil
}

// encodeAccount maps accounts to their Neo address form, the zero account
// becomes an empty string.
func encodeAccount(h util.Uint160) string {
	if h.Equals(util.Uint160{}) {
		return ""
	}
	return address.Uint160ToString(h)
}

func decodeAccount(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, nil
	}
	return address.StringToUint160(s)
}
