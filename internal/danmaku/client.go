package danmaku

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 访问 dandanplay 兼容的弹幕源 API
type Client struct {
	baseURL string
	name    string
	client  *resty.Client
}

func NewClient(baseURL, name string) *Client {
	return &Client{
		baseURL: baseURL,
		name:    name,
		client: resty.New().
			SetTimeout(15 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

func (c *Client) SetProxy(proxyURL string) {
	if proxyURL != "" {
		c.client.SetProxy(proxyURL)
	}
}

// Name 返回弹幕源名称，识别词规则中的 source 限定与之比较
func (c *Client) Name() string {
	return c.name
}

// SearchAnime 按关键字搜索番剧
func (c *Client) SearchAnime(keyword string) ([]Anime, error) {
	// GET /api/v2/search/anime?keyword=xxx
	resp, err := c.client.R().
		SetQueryParam("keyword", keyword).
		Get(c.baseURL + "/api/v2/search/anime")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search failed (%s): %s", resp.Status(), string(resp.Body()))
	}

	var result searchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return result.Animes, nil
}

// GetEpisodes 拉取一个番剧的分集列表
func (c *Client) GetEpisodes(animeID int) ([]Episode, error) {
	// GET /api/v2/bangumi/{animeId}
	resp, err := c.client.R().
		Get(fmt.Sprintf("%s/api/v2/bangumi/%d", c.baseURL, animeID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get episodes failed (%s): %s", resp.Status(), string(resp.Body()))
	}

	var result bangumiResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return result.Bangumi.Episodes, nil
}

// GetComments 拉取一集的全部弹幕
func (c *Client) GetComments(episodeID int) ([]Comment, error) {
	// GET /api/v2/comment/{episodeId}?withRelated=true
	u := fmt.Sprintf("%s/api/v2/comment/%d?%s", c.baseURL, episodeID,
		url.Values{"withRelated": {"true"}}.Encode())
	resp, err := c.client.R().Get(u)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get comments failed (%s): %s", resp.Status(), string(resp.Body()))
	}

	var result commentResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return result.Comments, nil
}
