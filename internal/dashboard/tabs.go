package dashboard

// DefaultTabs returns the representative panes shown until the
// dashboard is wired to live repository data.
func DefaultTabs() []Tab {
	return []Tab{
		{
			Title: "Status",
			Body: "On branch master\n\n" +
				"Changes not staged for commit:\n" +
				"  modified:   internal/workflow/flow.go\n" +
				"  modified:   cmd/root.go\n\n" +
				"Untracked files:\n" +
				"  internal/dashboard/tabs.go",
		},
		{
			Title: "Branches",
			Body: "* master\n" +
				"  feature/dashboard\n" +
				"  fix/push-errors",
		},
		{
			Title: "Log",
			Body: "a1b2c3d fix: correct null check\n" +
				"e4f5a6b feat: add dashboard command\n" +
				"c7d8e9f chore: initial commit",
		},
		{
			Title: "Remotes",
			Body: "origin\tgit@github.com:gitship-dev/gitship.git (fetch)\n" +
				"origin\tgit@github.com:gitship-dev/gitship.git (push)",
		},
	}
}
