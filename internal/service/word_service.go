// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"eitango_board/internal/middleware"
	"eitango_board/internal/model"
	"eitango_board/internal/repository"

	"gorm.io/gorm"
)

// WordService は単語の更新系操作を提供します。各操作は「単語の変更」と
// 「アクティビティの追記」の2つの独立したコミットで、まとめてロールバック
// しません。単語の変更が成功した後のログ追記失敗は、変更が残ったまま
// バックエンド障害として呼び出し側に返ります（既知の許容された不整合窓）。
type WordService interface {
	Register(ctx context.Context, english, japanese string) (string, error)
	UpdateCorrectFlag(ctx context.Context, id int, flag bool) (string, error)
	UpdateBookmarkFlag(ctx context.Context, id int, flag bool) (string, error)
	Delete(ctx context.Context, id int) (string, error)
	ListWords(ctx context.Context) ([]*model.WordListRow, error)
	ListBookmarked(ctx context.Context) ([]*model.BookmarkRow, error)
}

type wordService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	recorder ActivityRecorder
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, recorder ActivityRecorder) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
		recorder: recorder,
	}
}

// Register は単語を登録します。同じ english が既に存在する場合は
// japanese を上書きし、その場合も新規登録と同じくログを1行追記します。
func (s *wordService) Register(ctx context.Context, english, japanese string) (string, error) {
	if err := s.wordRepo.Upsert(ctx, s.db, english, japanese); err != nil {
		return "", err
	}
	return s.recorder.RecordRegister(ctx, english, japanese)
}

func (s *wordService) UpdateCorrectFlag(ctx context.Context, id int, flag bool) (string, error) {
	english, err := s.wordRepo.UpdateCorrectFlag(ctx, s.db, id, flag)
	if err != nil {
		return "", s.mapMutationError(ctx, err, id)
	}
	return s.recorder.RecordLearning(ctx, english, flag)
}

func (s *wordService) UpdateBookmarkFlag(ctx context.Context, id int, flag bool) (string, error) {
	english, err := s.wordRepo.UpdateBookmarkFlag(ctx, s.db, id, flag)
	if err != nil {
		return "", s.mapMutationError(ctx, err, id)
	}
	return s.recorder.RecordBookmark(ctx, english, flag)
}

func (s *wordService) Delete(ctx context.Context, id int) (string, error) {
	english, err := s.wordRepo.Delete(ctx, s.db, id)
	if err != nil {
		return "", s.mapMutationError(ctx, err, id)
	}
	return s.recorder.RecordDelete(ctx, english)
}

func (s *wordService) ListWords(ctx context.Context) ([]*model.WordListRow, error) {
	return s.wordRepo.FindAll(ctx, s.db)
}

func (s *wordService) ListBookmarked(ctx context.Context) ([]*model.BookmarkRow, error) {
	return s.wordRepo.FindBookmarked(ctx, s.db)
}

// mapMutationError は存在しない pkey への更新・削除をバックエンド障害に寄せます。
// リポジトリ層は ErrNotFound を区別して返しますが、このAPIのワイヤ契約では
// 「pkey が存在しない」は500です（404はルート・静的ファイルの未存在専用）。
func (s *wordService) mapMutationError(ctx context.Context, err error, id int) error {
	if errors.Is(err, model.ErrNotFound) {
		middleware.GetLogger(ctx).Warn("Mutation targeted a missing word", "id", id)
		return fmt.Errorf("word %d not found: %w", id, model.ErrInternalServer)
	}
	return err
}
