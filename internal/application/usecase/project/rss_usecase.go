package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type FeedInfo struct {
	Title       string
	Link        string
	Description string
	Author      string
}

type RSSUseCase struct {
	repo   project.Repository
	info   FeedInfo
	logger logger.Logger
}

func NewRSSUseCase(repo project.Repository, info FeedInfo, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{repo: repo, info: info, logger: log}
}

// Execute builds a feed of every project in listing order.
func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	projects, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list projects for RSS", err)
		return nil, err
	}

	feed := &feeds.Feed{
		Title:       uc.info.Title,
		Link:        &feeds.Link{Href: uc.info.Link},
		Description: uc.info.Description,
		Author:      &feeds.Author{Name: uc.info.Author},
		Items:       make([]*feeds.Item, 0, len(projects)),
	}

	for _, p := range projects {
		link := fmt.Sprintf("%s#project-%d", strings.TrimSuffix(uc.info.Link, "/"), p.ID)
		if p.ProjectURL != nil {
			link = *p.ProjectURL
		} else if p.GithubURL != nil {
			link = *p.GithubURL
		}

		description := p.Description
		if techs := project.SplitTechnologies(p.Technologies); len(techs) > 0 {
			description += "\n\nBuilt with: " + strings.Join(techs, ", ")
		}

		item := &feeds.Item{
			Id:          fmt.Sprintf("project-%d", p.ID),
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: description,
			Created:     p.CreatedAt,
		}
		if p.ImageURL != nil {
			item.Enclosure = &feeds.Enclosure{Url: *p.ImageURL, Type: "image/jpeg", Length: "0"}
		}
		feed.Items = append(feed.Items, item)

		if feed.Created.Before(p.CreatedAt) {
			feed.Created = p.CreatedAt
		}
	}

	uc.logger.Debug("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
