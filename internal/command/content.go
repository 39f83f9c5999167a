package command

import (
	"context"
	"fmt"
)

func runArticles(ctx context.Context, deps *Deps, args []string) error {
	if deps.Content == nil {
		fmt.Fprintln(deps.Out, "no content backend configured")
		return nil
	}

	articles, err := deps.Content.Articles(ctx)
	if err != nil {
		return surface(deps, err)
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Out, "no articles published yet")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Out, "%s  %-32s %s\n", a.PublishedAt.Format("2006-01-02"), a.Slug, a.Title)
	}

	return nil
}

func runArticle(ctx context.Context, deps *Deps, args []string) error {
	if len(args) != 1 {
		return usageError(deps, "article <slug>")
	}

	if deps.Content == nil {
		fmt.Fprintln(deps.Out, "no content backend configured")
		return nil
	}

	article, err := deps.Content.ArticleBySlug(ctx, args[0])
	if err != nil {
		return surface(deps, err)
	}

	fmt.Fprintln(deps.Out, article.Title)
	fmt.Fprintln(deps.Out, article.PublishedAt.Format("January 2, 2006"))
	fmt.Fprintln(deps.Out)
	if article.Excerpt != "" {
		fmt.Fprintln(deps.Out, article.Excerpt)
		fmt.Fprintln(deps.Out)
	}
	fmt.Fprintln(deps.Out, article.BodyHTML)
	return nil
}
