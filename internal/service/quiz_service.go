// internal/service/quiz_service.go
package service

import (
	"context"
	"math/rand"

	"eitango_board/internal/config"
	"eitango_board/internal/middleware"
	"eitango_board/internal/model"
	"eitango_board/internal/repository"

	"gorm.io/gorm"
)

// QuizService は学習画面の問題セットを組み立てます。
type QuizService interface {
	BuildQuiz(ctx context.Context) ([]*model.QuizItem, error)
}

type quizService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	cfg      *config.Config
}

func NewQuizService(db *gorm.DB, wordRepo repository.WordRepository, cfg *config.Config) QuizService {
	return &quizService{
		db:       db,
		wordRepo: wordRepo,
		cfg:      cfg,
	}
}

// BuildQuiz は未習得の単語ごとに多択問題を1問作ります。選択肢は正解の
// japanese と、未習得単語の japanese プールから一様に引いた不正解です。
// 不正解同士の重複は許容します（プールが小さいときは必然的に重複します）。
func (s *quizService) BuildQuiz(ctx context.Context) ([]*model.QuizItem, error) {
	words, err := s.wordRepo.FindLearning(ctx, s.db)
	if err != nil {
		return nil, err
	}
	pool, err := s.wordRepo.FindIncorrectJapanese(ctx, s.db)
	if err != nil {
		return nil, err
	}

	distractors := s.cfg.App.QuizChoices - 1

	items := make([]*model.QuizItem, 0, len(words))
	for _, word := range words {
		items = append(items, &model.QuizItem{
			ID:           word.ID,
			English:      word.English,
			Answers:      buildAnswers(word.Japanese, pool, distractors),
			Correct:      word.Japanese,
			BookmarkFlag: word.Bookmark,
		})
	}

	middleware.GetLogger(ctx).Info("Quiz built", "questions", len(items))
	return items, nil
}

// buildAnswers は正解と不正解を混ぜてシャッフルした選択肢を返します。
// 正解と同じ値をプールから先に取り除くことで抽選が必ず終わるようにし、
// 取り除いた結果プールが空なら選択肢は正解のみになります。
func buildAnswers(correct string, pool []string, distractors int) []string {
	candidates := make([]string, 0, len(pool))
	for _, japanese := range pool {
		if japanese != correct {
			candidates = append(candidates, japanese)
		}
	}

	answers := make([]string, 0, distractors+1)
	answers = append(answers, correct)
	if len(candidates) > 0 {
		for i := 0; i < distractors; i++ {
			answers = append(answers, candidates[rand.Intn(len(candidates))])
		}
	}

	rand.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})
	return answers
}
