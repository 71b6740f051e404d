package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sennkr/danmakuTool/internal/config"
	"github.com/sennkr/danmakuTool/internal/danmaku"
	"github.com/sennkr/danmakuTool/internal/db"
	"github.com/sennkr/danmakuTool/internal/event"
	"github.com/sennkr/danmakuTool/internal/model"
)

// ImportService 把一个搜索关键字跑完整个弹幕导入流程：
// 识别词预处理 → 弹幕源搜索 → 选定条目 → 识别词后处理 → 拉取弹幕落盘
type ImportService struct {
	words   *WordsService
	client  *danmaku.Client
	saveDir string
}

func NewImportService() *ImportService {
	baseURL, name, proxy := NewSettingsService().ProviderSettings()
	client := danmaku.NewClient(baseURL, name)
	client.SetProxy(proxy)
	return &ImportService{
		words:   NewWordsService(),
		client:  client,
		saveDir: config.AppConfig.Danmaku.SaveDir,
	}
}

// Run 新建一条导入记录并执行。episode/season 为 0 表示未指定。
func (s *ImportService) Run(keyword string, episode, season int) (*model.ImportLog, error) {
	entry := &model.ImportLog{
		Keyword:  keyword,
		Episode:  episode,
		Season:   season,
		Provider: s.client.Name(),
		Status:   model.ImportStatusPending,
	}
	if err := db.DB.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("创建导入记录失败: %w", err)
	}
	return entry, s.process(entry)
}

// Retry 重新执行一条失败的导入记录
func (s *ImportService) Retry(entry *model.ImportLog) error {
	entry.Status = model.ImportStatusPending
	entry.ErrorMsg = ""
	entry.RetryCount++
	if err := db.DB.Save(entry).Error; err != nil {
		return fmt.Errorf("更新导入记录失败: %w", err)
	}
	return s.process(entry)
}

func (s *ImportService) process(entry *model.ImportLog) error {
	m, err := s.words.Matcher()
	if err != nil {
		return s.fail(entry, err)
	}

	var episode, season *int
	if entry.Episode > 0 {
		v := entry.Episode
		episode = &v
	}
	if entry.Season > 0 {
		v := entry.Season
		season = &v
	}

	// 1. 搜索前预处理
	searchWord, episode, season, changed := m.PreprocessSearchKeyword(entry.Keyword, episode, season)
	entry.SearchWord = searchWord
	if changed {
		log.Printf("导入: 关键字预处理 %q -> %q", entry.Keyword, searchWord)
	}

	// 2. 弹幕源搜索
	animes, err := s.client.SearchAnime(searchWord)
	if err != nil {
		return s.fail(entry, fmt.Errorf("搜索弹幕源失败: %w", err))
	}
	if len(animes) == 0 {
		return s.fail(entry, fmt.Errorf("没有找到 %q 的匹配条目", searchWord))
	}

	// 相关度排序不在本工具范围内，直接取第一个结果
	best := animes[0]

	// 3. 选定后处理：修正标题/季度，收集元数据
	title, season, changed, meta := m.PostprocessTitle(best.Title, season, s.client.Name())
	if changed {
		log.Printf("导入: 标题后处理 %q -> %q", best.Title, title)
	}
	entry.MatchedTitle = title
	if meta != nil {
		entry.TMDBID = meta.TMDBID
	}
	if season != nil {
		entry.Season = *season
	}

	// 4. 定位目标分集
	episodes, err := s.client.GetEpisodes(best.AnimeID)
	if err != nil {
		return s.fail(entry, fmt.Errorf("拉取分集列表失败: %w", err))
	}
	if len(episodes) == 0 {
		return s.fail(entry, fmt.Errorf("条目 %q 没有分集", title))
	}
	target := episodes[0]
	if episode != nil {
		for _, ep := range episodes {
			if ep.Number == *episode {
				target = ep
				break
			}
		}
		entry.Episode = *episode
	}

	// 5. 拉取弹幕并落盘
	comments, err := s.client.GetComments(target.EpisodeID)
	if err != nil {
		return s.fail(entry, fmt.Errorf("拉取弹幕失败: %w", err))
	}
	if err := s.save(best.AnimeID, target.EpisodeID, comments); err != nil {
		return s.fail(entry, err)
	}

	entry.CommentCount = len(comments)
	entry.Status = model.ImportStatusCompleted
	if err := db.DB.Save(entry).Error; err != nil {
		return fmt.Errorf("更新导入记录失败: %w", err)
	}

	log.Printf("导入: %q 完成, %d 条弹幕", title, len(comments))
	event.GlobalBus.Publish(event.EventImportComplete, entry.ID)
	return nil
}

// save 把弹幕写到 saveDir/<animeId>/<episodeId>.json
func (s *ImportService) save(animeID, episodeID int, comments []danmaku.Comment) error {
	dir := filepath.Join(s.saveDir, fmt.Sprintf("%d", animeID))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建弹幕目录失败: %w", err)
	}

	data, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("%d.json", episodeID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("写入弹幕文件失败: %w", err)
	}
	return nil
}

func (s *ImportService) fail(entry *model.ImportLog, cause error) error {
	entry.Status = model.ImportStatusFailed
	entry.ErrorMsg = cause.Error()
	if err := db.DB.Save(entry).Error; err != nil {
		log.Printf("导入: 更新失败记录出错: %v", err)
	}
	log.Printf("导入: %q 失败: %v", entry.Keyword, cause)
	event.GlobalBus.Publish(event.EventImportFailed, entry.ID)
	return cause
}
