package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type txKey string

const keyTxConn = txKey("tx_conn")

type dbConn interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// WithTx runs cb inside a single transaction. Nested calls reuse the
// transaction already planted in the context.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(keyTxConn).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	txConn, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyTxConn, txConn)); err != nil {
		_ = txConn.Rollback()
		return err
	}

	if err := txConn.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *Repository) Chk(ctx context.Context) dbConn {
	if txConn, ok := ctx.Value(keyTxConn).(*sqlx.Tx); ok {
		return txConn
	}

	return r.connection
}

type messageRow struct {
	ID         uuid.UUID    `db:"id"`
	Seq        int64        `db:"seq"`
	SenderID   uuid.UUID    `db:"sender_id"`
	TargetKind string       `db:"target_kind"`
	TargetID   uuid.UUID    `db:"target_id"`
	Content    string       `db:"content"`
	Read       bool         `db:"read"`
	SentAt     sql.NullTime `db:"sent_at"`
}

func (row messageRow) toModel() model.Message {
	msg := model.Message{
		ID:       row.ID,
		Seq:      row.Seq,
		SenderID: row.SenderID,
		Content:  row.Content,
		Read:     row.Read,
	}

	if row.SentAt.Valid {
		msg.SentAt = row.SentAt.Time
	}

	if row.TargetKind == string(model.TargetGroup) {
		msg.Target = model.GroupTarget(row.TargetID)
	} else {
		msg.Target = model.DirectTarget(row.TargetID)
	}

	return msg
}

var messageColumns = []string{"id", "seq", "sender_id", "target_kind", "target_id", "content", "read", "sent_at"}

// conversationPredicate selects the messages of one conversation: the
// unordered direct pair or the group id.
func conversationPredicate(ref model.ConversationRef) sq.Sqlizer {
	if ref.Kind == model.ConversationGroup {
		return sq.Eq{
			"target_kind": string(model.TargetGroup),
			"target_id":   ref.GroupID,
		}
	}

	return sq.And{
		sq.Eq{"target_kind": string(model.TargetDirect)},
		sq.Or{
			sq.And{sq.Eq{"sender_id": ref.UserA}, sq.Eq{"target_id": ref.UserB}},
			sq.And{sq.Eq{"sender_id": ref.UserB}, sq.Eq{"target_id": ref.UserA}},
		},
	}
}

// AppendMessage inserts the message and fills its seq from the database
// sequence. seq is the append-order tie-breaker for equal timestamps.
func (r *Repository) AppendMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "sender_id", "target_kind", "target_id", "content", "sent_at").
		Values(message.ID, message.SenderID, string(message.Target.Kind), message.Target.ID, message.Content, message.SentAt).
		Suffix("RETURNING seq").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).GetContext(ctx, &message.Seq, query, args...)
	if err != nil {
		return fmt.Errorf("failed to append message: %v", err)
	}

	return nil
}

func (r *Repository) GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row messageRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	msg := row.toModel()

	return &msg, nil
}

// GetConversationHistory returns the full conversation in append order:
// ascending timestamps, ties broken by seq.
func (r *Repository) GetConversationHistory(ctx context.Context, ref model.ConversationRef) (*model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(conversationPredicate(ref)).
		OrderBy("sent_at ASC", "seq ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []messageRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation history: %v", err)
	}

	messages := make(model.MessageList, len(rows))
	for i, row := range rows {
		messages[i] = row.toModel()
	}

	return &messages, nil
}

func (r *Repository) GetLastMessage(ctx context.Context, ref model.ConversationRef) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(conversationPredicate(ref)).
		OrderBy("sent_at DESC", "seq DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row messageRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last message: %v", err)
	}

	msg := row.toModel()

	return &msg, nil
}

// MaxConversationSeq snapshots the newest seq in the conversation, 0 when
// the conversation has no messages yet.
func (r *Repository) MaxConversationSeq(ctx context.Context, ref model.ConversationRef) (int64, error) {
	query, args, err := sq.Select("COALESCE(MAX(seq), 0)").
		From("messages").
		Where(conversationPredicate(ref)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var maxSeq int64
	err = r.Chk(ctx).GetContext(ctx, &maxSeq, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to get max conversation seq: %v", err)
	}

	return maxSeq, nil
}

// MarkConversationRead flips read on the reader's unread messages up to and
// including maxSeq. Messages appended after the snapshot stay untouched, and
// already-read rows are filtered out, so the call is idempotent.
func (r *Repository) MarkConversationRead(ctx context.Context, ref model.ConversationRef, readerID uuid.UUID, maxSeq int64) (int64, error) {
	query, args, err := sq.Update("messages").
		Set("read", true).
		Where(conversationPredicate(ref)).
		Where(sq.NotEq{"sender_id": readerID}).
		Where(sq.Eq{"read": false}).
		Where(sq.LtOrEq{"seq": maxSeq}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark conversation read: %v", err)
	}

	transitioned, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %v", err)
	}

	return transitioned, nil
}

// SetMessageRead marks a single message read. A no-op for an already-read
// message, model.ErrNotFound for an unknown id.
func (r *Repository) SetMessageRead(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.Update("messages").
		Set("read", true).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set message read: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}

	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *Repository) CountUnread(ctx context.Context, ref model.ConversationRef, userID uuid.UUID) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("messages").
		Where(conversationPredicate(ref)).
		Where(sq.NotEq{"sender_id": userID}).
		Where(sq.Eq{"read": false}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %v", err)
	}

	return count, nil
}

// ListDirectCounterparts returns the distinct set of users the given user
// has exchanged at least one direct message with.
func (r *Repository) ListDirectCounterparts(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := sq.Select().
		Column(sq.Expr("DISTINCT CASE WHEN sender_id = ? THEN target_id ELSE sender_id END", userID)).
		From("messages").
		Where(sq.Eq{"target_kind": string(model.TargetDirect)}).
		Where(sq.Or{sq.Eq{"sender_id": userID}, sq.Eq{"target_id": userID}}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var counterparts []uuid.UUID
	err = r.Chk(ctx).SelectContext(ctx, &counterparts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list direct counterparts: %v", err)
	}

	return counterparts, nil
}

// ListActiveGroups filters the given roster groups down to those that have
// at least one message in the log.
func (r *Repository) ListActiveGroups(ctx context.Context, groupIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}

	query, args, err := sq.Select("DISTINCT target_id").
		From("messages").
		Where(sq.Eq{"target_kind": string(model.TargetGroup)}).
		Where(sq.Eq{"target_id": groupIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var active []uuid.UUID
	err = r.Chk(ctx).SelectContext(ctx, &active, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active groups: %v", err)
	}

	return active, nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (*model.ChatUser, error) {
	query, args, err := sq.Select("id", "nickname", "avatar_url").
		From("chats_user").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.ChatUser
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return &user, nil
}

func (r *Repository) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("chats_user").
		Where(sq.Eq{"id": userID.String()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var exists bool
	err = r.Chk(ctx).GetContext(ctx, &exists, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %v", err)
	}

	return exists, nil
}

func (r *Repository) AddNewUser(ctx context.Context, userInfo *model.ChatUser) error {
	query, args, err := sq.Insert("chats_user").
		Columns("id", "nickname", "avatar_url").
		Values(userInfo.ID, userInfo.Nickname, userInfo.AvatarURL).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateUserNickname(ctx context.Context, userUUID, newNickname string) error {
	query, args, err := sq.Update("chats_user").
		Set("nickname", newNickname).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUserAvatar(ctx context.Context, userUUID, avatarLink string) error {
	query, args, err := sq.Update("chats_user").
		Set("avatar_url", avatarLink).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
