// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Scrape Session - these keys drive the orchestration of a multi-source metadata scrape.
const (
	ScrapeBootstrap      = "scrape.bootstrap"
	ScrapeFields         = "scrape.fields"
	ScrapeMapping        = "scrape.mapping"
	ScrapeMaxJobs        = "scrape.max_jobs"
	ScrapeJobTimeout     = "scrape.job_timeout"
	ScrapeFallbackLocale = "scrape.fallback_locale"
)

// Source Settings - these keys hold per-source user configuration.
const (
	SourcesLocale      = "sources.locale"
	SourcesMalClientID = "sources.mal.client_id"
)

// Metadata Configuration - these keys govern the post-processing of fetched metadata.
const (
	MetadataTagRelevanceThreshold = "metadata.tag_relevance_threshold"
	MetadataCastLimit             = "metadata.cast_limit"
)

// Network Transport - these keys tune the shared http client.
const (
	NetworkRetries = "network.retries"
	NetworkTimeout = "network.timeout"
	NetworkCache   = "network.cache"
)

// History Tracking - these keys configure the persistence of finished scrape sessions.
const (
	HistorySave  = "history.save"
	HistoryLimit = "history.limit"
)

// Search Interaction - these keys define completion behaviour for titles.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite      = "logs.write"
	LogsLevel      = "logs.level"
	LogsJson       = "logs.json"
	LogsMaxSize    = "logs.max_size"
	LogsMaxBackups = "logs.max_backups"
	LogsMaxAge     = "logs.max_age"
)

// CLI Execution Environment - these flags and settings govern output rendering.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliWrap         = "cli.wrap"
)
