// internal/service/dashboard_service.go
package service

import (
	"context"
	"time"

	"eitango_board/internal/config"
	"eitango_board/internal/model"
	"eitango_board/internal/repository"

	"gorm.io/gorm"
)

// 表示用の日付フォーマット
const displayDateFormat = "2006/01/02"

// learnedDetailPattern は習得ログ集計のLIKEパターンです。
// 「{english}を習得しました」だけに一致し、「未習得に変更しました」は
// 末尾が異なるため一致しません。
const learnedDetailPattern = "%習得しました"

// DashboardService はダッシュボードとアクティビティ一覧の読み取りを提供します。
type DashboardService interface {
	GetDashboard(ctx context.Context) (*model.DashboardResponse, error)
	ListActivities(ctx context.Context) ([]*model.ActivityRow, error)
}

type dashboardService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	actRepo  repository.ActivityRepository
	cfg      *config.Config
	clock    Clock
}

func NewDashboardService(db *gorm.DB, wordRepo repository.WordRepository, actRepo repository.ActivityRepository, cfg *config.Config, clock Clock) DashboardService {
	if clock == nil {
		clock = time.Now
	}
	return &dashboardService{
		db:       db,
		wordRepo: wordRepo,
		actRepo:  actRepo,
		cfg:      cfg,
		clock:    clock,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*model.DashboardResponse, error) {
	total, err := s.countTotal(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := s.recentActivities(ctx)
	if err != nil {
		return nil, err
	}
	learningLog, err := s.learningLog(ctx)
	if err != nil {
		return nil, err
	}
	return &model.DashboardResponse{
		Total:       *total,
		Activitys:   activities,
		LearningLog: learningLog,
	}, nil
}

func (s *dashboardService) countTotal(ctx context.Context) (*model.TotalCount, error) {
	word, err := s.wordRepo.CountAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	correct, err := s.wordRepo.CountCorrect(ctx, s.db)
	if err != nil {
		return nil, err
	}
	bookmark, err := s.wordRepo.CountBookmarked(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return &model.TotalCount{
		Word:      word,
		IsCorrect: correct,
		Bookmark:  bookmark,
	}, nil
}

func (s *dashboardService) recentActivities(ctx context.Context) ([]*model.ActivityDisplay, error) {
	activities, err := s.actRepo.FindRecent(ctx, s.db, s.cfg.App.RecentActivityLimit)
	if err != nil {
		return nil, err
	}
	rows := make([]*model.ActivityDisplay, 0, len(activities))
	for _, activity := range activities {
		rows = append(rows, &model.ActivityDisplay{
			Type:   model.ActivityType(activity.Type).DisplayCategory(),
			Detail: activity.Detail,
		})
	}
	return rows, nil
}

func (s *dashboardService) learningLog(ctx context.Context) ([]*model.LearningLogRow, error) {
	today := Today(s.clock)
	from := today.AddDate(0, 0, -s.cfg.App.LearningLogDays)

	counts, err := s.actRepo.CountLearnedByDate(ctx, s.db, model.ActivityLearning, from, today, learnedDetailPattern)
	if err != nil {
		return nil, err
	}
	rows := make([]*model.LearningLogRow, 0, len(counts))
	for _, count := range counts {
		rows = append(rows, &model.LearningLogRow{
			Count: count.Count,
			Date:  count.Date.Format(displayDateFormat),
		})
	}
	return rows, nil
}

func (s *dashboardService) ListActivities(ctx context.Context) ([]*model.ActivityRow, error) {
	activities, err := s.actRepo.FindAllForDisplay(ctx, s.db)
	if err != nil {
		return nil, err
	}
	rows := make([]*model.ActivityRow, 0, len(activities))
	for _, activity := range activities {
		rows = append(rows, &model.ActivityRow{
			Date:   activity.Date.Format(displayDateFormat),
			Detail: activity.Detail,
		})
	}
	return rows, nil
}
