package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"highlight-vmaf-service/ddd/domain/entity"
	"highlight-vmaf-service/ddd/infrastructure/database/dao"
	"highlight-vmaf-service/ddd/infrastructure/database/po"
	"highlight-vmaf-service/pkg/errno"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One connection so every statement sees the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&po.VideoInfo{}, &po.VideoStat{}, &po.HighlightFrame{}))
	return db
}

func seedVideos(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		status := 0
		if i%2 == 0 {
			status = 1
		}
		require.NoError(t, db.Create(&po.VideoInfo{
			OriginalURL:  fmt.Sprintf("https://cdn.example.com/original/%d.mp4", i),
			HighlightURL: fmt.Sprintf("https://cdn.example.com/highlight/%d.mp4", i),
			Title:        fmt.Sprintf("match highlight %d", i),
			Status:       status,
		}).Error)
	}
}

func TestVideoInsertAssignsIDAndQueuedStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewVideoRepositoryWith(dao.NewVideoDAOWith(db))

	stored, err := repo.Insert(context.Background(), &entity.VideoRecord{
		ID:           999, // caller-supplied ids are ignored
		OriginalURL:  "https://cdn.example.com/original/1.mp4",
		HighlightURL: "https://cdn.example.com/highlight/1.mp4",
		Title:        "first goal",
		Status:       7,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, entity.StatusQueued, stored.Status)
	assert.Equal(t, "first goal", stored.Title)

	var row po.VideoInfo
	require.NoError(t, db.First(&row, stored.ID).Error)
	assert.Equal(t, entity.StatusQueued, row.Status)
}

func TestVideoListPagePagination(t *testing.T) {
	db := openTestDB(t)
	repo := NewVideoRepositoryWith(dao.NewVideoDAOWith(db))
	seedVideos(t, db, 25)

	ctx := context.Background()

	page2 := repo.ListPage(ctx, 2, 10, "id", "asc", nil, "")
	require.Len(t, page2, 10)
	assert.Equal(t, int64(11), page2[0].ID)
	assert.Equal(t, int64(20), page2[9].ID)

	page3 := repo.ListPage(ctx, 3, 10, "id", "asc", nil, "")
	assert.Len(t, page3, 5)

	page4 := repo.ListPage(ctx, 4, 10, "id", "asc", nil, "")
	assert.Empty(t, page4)

	assert.Equal(t, int64(25), repo.Count(ctx, nil, ""))
}

func TestVideoListPageDefaultSortIsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewVideoRepositoryWith(dao.NewVideoDAOWith(db))
	seedVideos(t, db, 3)

	videos := repo.ListPage(context.Background(), 1, 10, "", "", nil, "")
	require.Len(t, videos, 3)
	assert.Equal(t, int64(3), videos[0].ID)
	assert.Equal(t, int64(1), videos[2].ID)
}

func TestVideoListPageFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewVideoRepositoryWith(dao.NewVideoDAOWith(db))
	seedVideos(t, db, 10)
	require.NoError(t, db.Create(&po.VideoInfo{
		OriginalURL:  "https://cdn.example.com/original/x.mp4",
		HighlightURL: "https://cdn.example.com/highlight/x.mp4",
		Title:        "training session",
		Status:       1,
	}).Error)

	ctx := context.Background()

	done := 1
	videos := repo.ListPage(ctx, 1, 100, "id", "asc", &done, "")
	assert.Len(t, videos, 6)
	for _, v := range videos {
		assert.Equal(t, 1, v.Status)
	}
	assert.Equal(t, int64(6), repo.Count(ctx, &done, ""))

	// Substring filter combines with the status filter.
	videos = repo.ListPage(ctx, 1, 100, "id", "asc", &done, "training")
	require.Len(t, videos, 1)
	assert.Equal(t, "training session", videos[0].Title)
	assert.Equal(t, int64(1), repo.Count(ctx, &done, "training"))

	// No matches is an empty page, not an error.
	assert.Empty(t, repo.ListPage(ctx, 1, 100, "id", "asc", nil, "no such title"))
	assert.Zero(t, repo.Count(ctx, nil, "no such title"))
}

func TestVideoListPageSortColumnWhitelisted(t *testing.T) {
	db := openTestDB(t)
	repo := NewVideoRepositoryWith(dao.NewVideoDAOWith(db))
	seedVideos(t, db, 3)

	// A hostile order_by degrades to the default key instead of reaching SQL.
	videos := repo.ListPage(context.Background(), 1, 10, "1; DROP TABLE video_info", "asc", nil, "")
	require.Len(t, videos, 3)
	assert.Equal(t, int64(1), videos[0].ID)

	var count int64
	require.NoError(t, db.Model(&po.VideoInfo{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestVideoReadsDegradeOnStoreFailure(t *testing.T) {
	db := openTestDB(t)
	repo := NewVideoRepositoryWith(dao.NewVideoDAOWith(db))
	seedVideos(t, db, 3)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	ctx := context.Background()
	assert.Empty(t, repo.ListPage(ctx, 1, 10, "id", "asc", nil, ""))
	assert.Zero(t, repo.Count(ctx, nil, ""))

	// Writes do not degrade: the failure surfaces as a database sentinel.
	_, err = repo.Insert(ctx, &entity.VideoRecord{
		OriginalURL:  "https://cdn.example.com/original/1.mp4",
		HighlightURL: "https://cdn.example.com/highlight/1.mp4",
		Title:        "late goal",
	})
	require.Error(t, err)
	assert.Equal(t, errno.ErrDatabase, errno.CodeOf(err))
}

func TestHighlightStatsListByVideo(t *testing.T) {
	db := openTestDB(t)
	repo := NewHighlightStatRepositoryWith(dao.NewHighlightStatDAOWith(db))

	mean := func(v float64) *float64 { return &v }
	for i := 1; i <= 5; i++ {
		require.NoError(t, db.Create(&po.VideoStat{
			VideoID:  1,
			VmafMean: mean(float64(100 - i)),
		}).Error)
	}
	require.NoError(t, db.Create(&po.VideoStat{VideoID: 2, VmafMean: mean(50)}).Error)

	ctx := context.Background()

	stats := repo.ListByVideo(ctx, 1, 1, 10, "", "")
	require.Len(t, stats, 5)
	assert.Equal(t, int64(1), stats[0].ID)
	assert.Equal(t, int64(1), stats[0].VideoID)
	assert.Equal(t, int64(5), repo.CountByVideo(ctx, 1))

	byMean := repo.ListByVideo(ctx, 1, 1, 10, "vmaf_mean", "desc")
	require.Len(t, byMean, 5)
	assert.Equal(t, 99.0, *byMean[0].VmafMean)

	// Unknown parents yield an empty page with zero total.
	assert.Empty(t, repo.ListByVideo(ctx, 42, 1, 10, "", ""))
	assert.Zero(t, repo.CountByVideo(ctx, 42))
}

func TestHighlightFramesListByHighlight(t *testing.T) {
	db := openTestDB(t)
	repo := NewHighlightFrameRepositoryWith(dao.NewHighlightFrameDAOWith(db))

	score := func(v float64) *float64 { return &v }
	for i := 3; i >= 1; i-- {
		require.NoError(t, db.Create(&po.HighlightFrame{
			HighlightID: 7,
			FrameIndex:  i,
			VmafScore:   score(float64(90 + i)),
		}).Error)
	}

	ctx := context.Background()

	frames := repo.ListByHighlight(ctx, 7, 1, 10, "frame_index", "")
	require.Len(t, frames, 3)
	assert.Equal(t, 1, frames[0].FrameIndex)
	assert.Equal(t, 3, frames[2].FrameIndex)
	assert.Equal(t, int64(3), repo.CountByHighlight(ctx, 7))
}
