/*
Copyright 2025 The TeenMind Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package guardian

import (
	"fmt"

	"github.com/feng2740249312/teenmind-guardian/pkg/tool/httpclient"
	"github.com/feng2740249312/teenmind-guardian/pkg/tool/log"
)

// StartNeteaseCrawl starts background collection of a user's NetEase Cloud
// Music listening history.
func (c *Client) StartNeteaseCrawl(userID, neteaseUID string, days int) (*CrawlTaskStatus, error) {
	url := "/api/data/netease/crawl"

	resp := &CrawlTaskStatus{}
	_, err := c.Post(url,
		httpclient.SetBody(&neteaseCrawlArgs{UserID: userID, NeteaseUID: neteaseUID, Days: days}),
		httpclient.SetResult(resp),
	)
	if err != nil {
		log.Errorf("start netease crawl for user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

// StartQzoneCrawl starts background collection of a user's Qzone posts.
func (c *Client) StartQzoneCrawl(userID, qqNumber string, days int) (*CrawlTaskStatus, error) {
	url := "/api/data/qzone/crawl"

	resp := &CrawlTaskStatus{}
	_, err := c.Post(url,
		httpclient.SetBody(&qzoneCrawlArgs{UserID: userID, QQNumber: qqNumber, Days: days}),
		httpclient.SetResult(resp),
	)
	if err != nil {
		log.Errorf("start qzone crawl for user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

// StartDoubanCrawl starts background collection of a user's Douban group
// activity. groups may be nil to use the backend defaults.
func (c *Client) StartDoubanCrawl(userID, doubanUID string, groups []string) (*CrawlTaskStatus, error) {
	url := "/api/data/douban/crawl"

	resp := &CrawlTaskStatus{}
	_, err := c.Post(url,
		httpclient.SetBody(&doubanCrawlArgs{UserID: userID, DoubanUID: doubanUID, Groups: groups}),
		httpclient.SetResult(resp),
	)
	if err != nil {
		log.Errorf("start douban crawl for user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

// StartWeiboCrawl starts background collection of a user's Weibo posts.
// keywords may be nil to use the backend defaults.
func (c *Client) StartWeiboCrawl(userID, weiboUID string, keywords []string) (*CrawlTaskStatus, error) {
	url := "/api/data/weibo/crawl"

	resp := &CrawlTaskStatus{}
	_, err := c.Post(url,
		httpclient.SetBody(&weiboCrawlArgs{UserID: userID, WeiboUID: weiboUID, Keywords: keywords}),
		httpclient.SetResult(resp),
	)
	if err != nil {
		log.Errorf("start weibo crawl for user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

// GetCrawlStatus reports the state of all collection tasks for a user.
func (c *Client) GetCrawlStatus(userID string) (*CrawlStatus, error) {
	url := fmt.Sprintf("/api/data/status/%s", userID)

	resp := &CrawlStatus{}
	_, err := c.Get(url, httpclient.SetResult(resp))
	if err != nil {
		log.Errorf("get crawl status for user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}
