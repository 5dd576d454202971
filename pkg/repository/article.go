package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/feedloop/feedloop/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          int64         `db:"id"`
	FeedID      int64         `db:"feed_id"`
	GUID        string        `db:"guid"`
	Title       string        `db:"title"`
	Link        string        `db:"link"`
	Description string        `db:"description"`
	Content     string        `db:"content"`
	Author      string        `db:"author"`
	Categories  categoriesSQL `db:"categories"`
	Published   time.Time     `db:"published"`
	CreatedAt   time.Time     `db:"created_at"`
}

// categoriesSQL is a JSON array of category strings for SQL operations
type categoriesSQL []string

// Value implements driver.Valuer
func (c categoriesSQL) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal categories: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (c *categoriesSQL) Scan(value any) error {
	if value == nil {
		*c = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unexpected categories type %T", value)
	}
	if len(data) == 0 {
		*c = nil
		return nil
	}
	return json.Unmarshal(data, c)
}

// ArticleKeys holds the identity fields of a feed's stored articles,
// the raw material for duplicate detection
type ArticleKeys struct {
	Links  []string
	GUIDs  []string
	Titles []string
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// GetArticleKeys returns the link/guid/title of every article in a feed
func (r *ArticleRepository) GetArticleKeys(ctx context.Context, feedID int64) (*ArticleKeys, error) {
	rows := []struct {
		Link  string `db:"link"`
		GUID  string `db:"guid"`
		Title string `db:"title"`
	}{}
	err := r.db.SelectContext(ctx, &rows, "SELECT link, guid, title FROM articles WHERE feed_id = ?", feedID)
	if err != nil {
		return nil, fmt.Errorf("get article keys: %w", err)
	}

	keys := &ArticleKeys{
		Links:  make([]string, 0, len(rows)),
		GUIDs:  make([]string, 0, len(rows)),
		Titles: make([]string, 0, len(rows)),
	}
	for _, row := range rows {
		keys.Links = append(keys.Links, row.Link)
		keys.GUIDs = append(keys.GUIDs, row.GUID)
		keys.Titles = append(keys.Titles, row.Title)
	}
	return keys, nil
}

// CreateArticles inserts candidates one by one and returns the stored
// articles. Uniqueness violations are swallowed with a log entry: the
// in-memory dedupe upstream is an optimization only, the unique indexes are
// the real invariant and a concurrent fetch of the same feed may have won
// the race. Lock errors are retried.
func (r *ArticleRepository) CreateArticles(ctx context.Context, feedID int64, candidates []domain.Candidate) ([]domain.Article, error) {
	inserted := make([]domain.Article, 0, len(candidates))

	for _, c := range candidates {
		sqlArticle := &articleSQL{
			FeedID:      feedID,
			GUID:        c.GUID,
			Title:       c.Title,
			Link:        c.Link,
			Description: c.Description,
			Content:     c.Content,
			Author:      c.Author,
			Categories:  categoriesSQL(c.Categories),
			Published:   c.Published,
		}

		retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
		var id int64
		err := retrier.Do(ctx, func() error {
			query := `
				INSERT INTO articles (feed_id, guid, title, link, description, content, author, categories, published)
				VALUES (:feed_id, :guid, :title, :link, :description, :content, :author, :categories, :published)
			`
			result, execErr := r.db.NamedExecContext(ctx, query, sqlArticle)
			if execErr != nil {
				if isLockError(execErr) {
					return execErr // retry
				}
				return &criticalError{err: execErr}
			}
			var idErr error
			id, idErr = result.LastInsertId()
			if idErr != nil {
				return &criticalError{err: fmt.Errorf("get insert id: %w", idErr)}
			}
			return nil
		})

		if err != nil {
			if isConflictError(err) {
				lgr.Printf("[DEBUG] article already stored, skipping %q (%s)", c.Title, c.Link)
				continue
			}
			return inserted, fmt.Errorf("create article %q: %w", c.Title, err)
		}

		inserted = append(inserted, domain.Article{
			ID:          id,
			FeedID:      feedID,
			GUID:        c.GUID,
			Title:       c.Title,
			Link:        c.Link,
			Description: c.Description,
			Content:     c.Content,
			Author:      c.Author,
			Categories:  c.Categories,
			Published:   c.Published,
		})
	}

	return inserted, nil
}

// GetArticles retrieves a feed's articles, newest first
func (r *ArticleRepository) GetArticles(ctx context.Context, feedID int64, limit int) ([]domain.Article, error) {
	var rows []articleSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM articles WHERE feed_id = ? ORDER BY published DESC LIMIT ?", feedID, limit)
	if err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	articles := make([]domain.Article, len(rows))
	for i, a := range rows {
		articles[i] = *r.toDomainArticle(&a)
	}
	return articles, nil
}

// CountArticles returns the number of stored articles for a feed,
// or for the whole store when feedID is 0
func (r *ArticleRepository) CountArticles(ctx context.Context, feedID int64) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM articles"
	args := []any{}
	if feedID > 0 {
		query += " WHERE feed_id = ?"
		args = append(args, feedID)
	}
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// Prune deletes articles published before the retention cutoff together with
// each feed's overflow beyond the per-feed cap (ranked by publish time,
// newest kept). Both sets go through a single delete pass, an article
// matching both conditions is removed once.
func (r *ArticleRepository) Prune(ctx context.Context, maxAge time.Duration, maxPerFeed int) (int64, error) {
	cutoff := time.Now().Add(-maxAge)

	query := `
		DELETE FROM articles
		WHERE published < ?
		   OR id IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (PARTITION BY feed_id ORDER BY published DESC, id DESC) AS rank
				FROM articles
			) ranked
			WHERE ranked.rank > ?
		   )
	`
	result, err := r.db.ExecContext(ctx, query, cutoff, maxPerFeed)
	if err != nil {
		return 0, fmt.Errorf("prune articles: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return deleted, nil
}

// toDomainArticle converts articleSQL to domain.Article
func (r *ArticleRepository) toDomainArticle(a *articleSQL) *domain.Article {
	return &domain.Article{
		ID:          a.ID,
		FeedID:      a.FeedID,
		GUID:        a.GUID,
		Title:       a.Title,
		Link:        a.Link,
		Description: a.Description,
		Content:     a.Content,
		Author:      a.Author,
		Categories:  a.Categories,
		Published:   a.Published,
		CreatedAt:   a.CreatedAt,
	}
}
