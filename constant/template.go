package constant

// Lua source entrypoints.
const (
	FetchMetadataFn  = "FetchMetadata"
	SearchMetadataFn = "SearchMetadata"
)

// Lua source declarations read from script globals.
const (
	FieldsGlobal    = "Fields"
	NamespaceGlobal = "Namespace"
	LocaleGlobal    = "Locale"
	KindsGlobal     = "Kinds"
)

// SourceTemplate is a Go text/template for scaffolding new Lua metadata sources.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias person { name: string, role: string|nil, character: string|nil }
---@alias metadata { title: string|nil, synonyms: string[]|nil, overview: string|nil, genres: string[]|nil, tags: string[]|nil, cast: person[]|nil, crew: person[]|nil, poster: string|nil, banner: string|nil, status: string|nil, aired: string|nil, ended: string|nil, episodes: number|nil, runtime: number|nil, rating: number|nil, studios: string[]|nil, certification: string|nil, links: string[]|nil, refs: table<string, string>|nil }


----- DECLARATIONS -----

--- Fields this source can supply.
{{ .FieldsGlobal }} = { "title", "overview", "genres" }

--- Identifier namespace this source is addressed by.
{{ .NamespaceGlobal }} = "{{ .Namespace }}"

--- Locale used when the user did not configure one.
{{ .LocaleGlobal }} = "en"

--- END DECLARATIONS ---



----- MAIN -----

--- Fetches metadata for the item with the given identifier.
-- @param id string Identifier in the declared namespace
-- @param fields string[] Requested fields
-- @param locale string BCP 47 language tag
-- @return metadata
function {{ .FetchMetadataFn }}(id, fields, locale)
	return {}
end


--- Optional. Resolves an identifier from a title.
-- @param title string
-- @return string Identifier or empty string
function {{ .SearchMetadataFn }}(title)
	return ""
end

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
