package danmaku

// Anime 代表搜索结果里的一个番剧条目
type Anime struct {
	AnimeID      int    `json:"animeId"`
	Title        string `json:"animeTitle"`
	Type         string `json:"type"`
	EpisodeCount int    `json:"episodeCount"`
}

// Episode 代表番剧的一集
type Episode struct {
	EpisodeID int    `json:"episodeId"`
	Title     string `json:"episodeTitle"`
	Number    int    `json:"episodeNumber"`
}

// Comment 一条弹幕。p 是 "时间,模式,颜色,用户" 的参数串，m 是正文。
type Comment struct {
	CID int64  `json:"cid"`
	P   string `json:"p"`
	M   string `json:"m"`
}

type searchResponse struct {
	Animes []Anime `json:"animes"`
}

type bangumiResponse struct {
	Bangumi struct {
		Episodes []Episode `json:"episodes"`
	} `json:"bangumi"`
}

type commentResponse struct {
	Count    int       `json:"count"`
	Comments []Comment `json:"comments"`
}
