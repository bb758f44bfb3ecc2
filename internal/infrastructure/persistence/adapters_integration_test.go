package persistence

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/db"
	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

// openTestDB поднимает схему в отдельном search_path, чтобы тесты не трогали public.
// Без TEST_DATABASE_URL тесты пропускаются.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан")
	}
	ctx := context.Background()

	admin, err := db.NewPostgres(ctx, dsn)
	require.NoError(t, err)
	schema := "it_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = admin.ExecContext(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.ExecContext(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		_ = admin.Close()
	})

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	conn, err := db.NewPostgres(ctx, fmt.Sprintf("%s%ssearch_path=%s", dsn, sep, schema))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.RunMigrations(ctx, conn, "../../../migrations"))
	return conn
}

func seedUser(t *testing.T, users *UserRepositoryAdapter, name string) *entity.User {
	t.Helper()
	u, err := entity.NewUser(name+"@example.com", name, "hash")
	require.NoError(t, err)
	u.Skills = []string{"Go"}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestUserRepositoryAdapter_Integration(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	users := NewUserRepositoryAdapter(conn)

	ann := seedUser(t, users, "ann")
	bob := seedUser(t, users, "bob")

	dup, err := entity.NewUser("ANN@example.com", "Other", "hash")
	require.NoError(t, err)
	assert.ErrorIs(t, users.Create(ctx, dup), apperror.ErrEmailTaken)

	found, err := users.FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, found.ID)
	assert.Equal(t, []string{"Go"}, found.Skills)
	assert.Equal(t, []string{}, found.Tools)

	_, err = users.FindByID(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))

	others, err := users.ListExcept(ctx, ann.ID, 10)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, bob.ID, others[0].ID)
}

func TestPostAndInteractions_Integration(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	users := NewUserRepositoryAdapter(conn)
	posts := NewPostRepositoryAdapter(conn, capability.All())
	likes := NewLikeRepositoryAdapter(conn)
	bookmarks := NewBookmarkRepositoryAdapter(conn)
	comments := NewCommentRepositoryAdapter(conn)

	ann := seedUser(t, users, "ann")
	bob := seedUser(t, users, "bob")
	content := "hello"
	post, err := entity.NewPost(ann.ID, &content, nil)
	require.NoError(t, err)
	require.NoError(t, posts.Create(ctx, post))

	inserted, err := likes.Add(ctx, entity.NewLike(post.ID, bob.ID))
	require.NoError(t, err)
	assert.True(t, inserted)
	inserted, err = likes.Add(ctx, entity.NewLike(post.ID, bob.ID))
	require.NoError(t, err)
	assert.False(t, inserted)

	_, err = likes.Add(ctx, entity.NewLike(uuid.New(), bob.ID))
	assert.ErrorIs(t, err, apperror.ErrPostNotFound)

	c, err := entity.NewComment(post.ID, bob.ID, "nice")
	require.NoError(t, err)
	require.NoError(t, comments.Create(ctx, c))

	got, err := posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)
	assert.Equal(t, 1, got.CommentCount)
	assert.Equal(t, "ann", got.Author.Name)

	counts, err := likes.CountByPosts(ctx, []uuid.UUID{post.ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{post.ID: 1}, counts)

	_, err = bookmarks.Add(ctx, entity.NewBookmark(post.ID, bob.ID))
	require.NoError(t, err)
	saved, err := posts.ListBookmarkedBy(ctx, bob.ID, 10)
	require.NoError(t, err)
	require.Len(t, saved, 1)

	require.NoError(t, posts.Delete(ctx, post.ID))
	n, err := likes.Count(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.ErrorIs(t, posts.Delete(ctx, post.ID), apperror.ErrPostNotFound)
}

func TestConversationRepositoryAdapter_Integration(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	users := NewUserRepositoryAdapter(conn)
	convs := NewConversationRepositoryAdapter(conn)
	messages := NewMessageRepositoryAdapter(conn)

	ann := seedUser(t, users, "ann")
	bob := seedUser(t, users, "bob")

	conv, err := entity.NewConversation(ann.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, convs.Create(ctx, conv))

	reversed, err := entity.NewConversation(bob.ID, ann.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, convs.Create(ctx, reversed), apperror.ErrConversationExists)

	found, err := convs.FindByPair(ctx, bob.ID, ann.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, conv.ID, found.ID)

	msg, err := entity.NewMessage(conv.ID, ann.ID, "hi")
	require.NoError(t, err)
	msg.CreatedAt = conv.UpdatedAt.Add(time.Second)
	require.NoError(t, messages.Append(ctx, msg))

	unread, err := messages.CountUnread(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	previews, err := convs.ListPreviews(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, previews, 1)
	assert.Equal(t, ann.ID, previews[0].OtherUser.ID)
	require.NotNil(t, previews[0].LatestMessage)
	assert.Equal(t, "hi", previews[0].LatestMessage.Content)
	assert.Equal(t, 1, previews[0].UnreadCount)

	changed, err := messages.MarkReadFor(ctx, conv.ID, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, changed)
	changed, err = messages.MarkReadFor(ctx, conv.ID, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestMoodBoardRepositoryAdapter_Integration(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	users := NewUserRepositoryAdapter(conn)
	boards := NewMoodBoardRepositoryAdapter(conn)

	ann := seedUser(t, users, "ann")
	board := entity.NewMoodBoard(ann.ID, "Inspo", nil, false)
	require.NoError(t, boards.Create(ctx, board))

	highest, err := boards.MaxItemOrder(ctx, board.ID)
	require.NoError(t, err)
	assert.Nil(t, highest)

	for i := 1; i <= 5; i++ {
		url := fmt.Sprintf("https://img.example.com/%d.png", i)
		require.NoError(t, boards.AddItem(ctx, entity.NewMoodBoardItem(board.ID, nil, nil, &url, i)))
	}

	list, err := boards.ListByOwner(ctx, ann.ID, 4)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].ItemCount)
	require.Len(t, list[0].PreviewItems, 4)
	assert.Equal(t, 1, list[0].PreviewItems[0].Order)

	url := "https://img.example.com/x.png"
	err = boards.AddItem(ctx, entity.NewMoodBoardItem(uuid.New(), nil, nil, &url, 1))
	assert.ErrorIs(t, err, apperror.ErrMoodBoardNotFound)
}

func TestPortfolioRepositoryAdapter_Integration(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	users := NewUserRepositoryAdapter(conn)
	portfolio := NewPortfolioRepositoryAdapter(conn)

	ann := seedUser(t, users, "ann")
	highest, err := portfolio.MaxOrder(ctx, ann.ID)
	require.NoError(t, err)
	assert.Nil(t, highest)

	second := entity.NewPortfolioItem(ann.ID, entity.PortfolioDetails{ImageURL: "https://x/2.png"}, 2)
	first := entity.NewPortfolioItem(ann.ID, entity.PortfolioDetails{ImageURL: "https://x/1.png"}, 1)
	require.NoError(t, portfolio.Create(ctx, second))
	require.NoError(t, portfolio.Create(ctx, first))

	items, err := portfolio.ListByUser(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)

	highest, err = portfolio.MaxOrder(ctx, ann.ID)
	require.NoError(t, err)
	require.NotNil(t, highest)
	assert.Equal(t, 2, *highest)
}
