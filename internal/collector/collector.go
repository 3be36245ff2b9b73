// internal/collector/collector.go
package collector

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"eitango_board/internal/repository"

	"github.com/PuerkitoBio/goquery"
	"gorm.io/gorm"
)

// englishPattern は登録対象にする英語側のフィルタです。
// 英字と空白以外で始まるテキストはスクレイピング結果から除外します。
var englishPattern = regexp.MustCompile(`^[a-zA-Z\s]+`)

// Pair はスクレイピングで得た英語・日本語の組です。
type Pair struct {
	English  string
	Japanese string
}

// Collector は設定されたURL群から単語の組を収集し、単語テーブルに登録します。
// 取得は並列、書き込みは直列で、1件の失敗はバッチ全体を止めません。
type Collector struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	client   *http.Client
	workers  int
	logger   *slog.Logger
}

func New(db *gorm.DB, wordRepo repository.WordRepository, workers int, timeout time.Duration, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 1
	}
	return &Collector{
		db:       db,
		wordRepo: wordRepo,
		client:   &http.Client{Timeout: timeout},
		workers:  workers,
		logger:   logger,
	}
}

// ReadTargets はURLリストファイルを読み込みます。1行1URL、空行は無視します。
func ReadTargets(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open targets file: %w", err)
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}
	return urls, nil
}

// Run は全URLを取得・解析し、得られた組を1件ずつ登録します。
// 戻り値は登録に成功した件数です。
func (c *Collector) Run(ctx context.Context, urls []string) (int, error) {
	pairs := c.fetchAll(ctx, urls)

	inserted := 0
	for _, pair := range pairs {
		if !englishPattern.MatchString(pair.English) {
			// 英語以外
			continue
		}
		english := strings.TrimSpace(pair.English)
		if err := c.wordRepo.Upsert(ctx, c.db, english, pair.Japanese); err != nil {
			c.logger.Warn("Skipping word after insert failure",
				slog.String("english", english),
				slog.Any("error", err),
			)
			continue
		}
		inserted++
	}

	c.logger.Info("Collect finished",
		slog.Int("urls", len(urls)),
		slog.Int("pairs", len(pairs)),
		slog.Int("inserted", inserted),
	)
	return inserted, nil
}

// fetchAll はURL群を固定数のワーカーで並列取得します。
// 失敗したURLはログに残して読み飛ばし、成功分の組だけを返します。
func (c *Collector) fetchAll(ctx context.Context, urls []string) []Pair {
	jobs := make(chan string)
	results := make(chan []Pair)

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for url := range jobs {
				pairs, err := c.fetch(ctx, url)
				if err != nil {
					c.logger.Warn("Skipping URL after fetch failure",
						slog.String("url", url),
						slog.Any("error", err),
					)
					continue
				}
				results <- pairs
			}
		}()
	}

	go func() {
		for _, url := range urls {
			jobs <- url
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var all []Pair
	for pairs := range results {
		all = append(all, pairs...)
	}
	return all
}

// fetch は1URLを取得し、class="eng" / class="jap" の要素を順に組にします。
func (c *Collector) fetch(ctx context.Context, url string) ([]Pair, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	var english, japanese []string
	doc.Find(".eng").Each(func(_ int, sel *goquery.Selection) {
		english = append(english, sel.Text())
	})
	doc.Find(".jap").Each(func(_ int, sel *goquery.Selection) {
		japanese = append(japanese, sel.Text())
	})

	// zip: 短い方に合わせる
	n := len(english)
	if len(japanese) < n {
		n = len(japanese)
	}
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{English: english[i], Japanese: japanese[i]})
	}
	return pairs, nil
}
