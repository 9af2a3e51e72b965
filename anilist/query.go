package anilist

import "fmt"

var animeSubquery = `
id
idMal
title {
	romaji
	english
	native
}
description(asHtml: false)
tags {
	name
	rank
}
genres
coverImage {
	extraLarge
	large
	medium
	color
}
bannerImage
characters (page: 1, perPage: 25, sort: [ROLE, RELEVANCE]) {
	edges {
		role
		node {
			name {
				full
				native
			}
		}
		voiceActors (language: JAPANESE) {
			name {
				full
				native
			}
		}
	}
}
staff (page: 1, perPage: 25, sort: RELEVANCE) {
	edges {
		role
		node {
			name {
				full
				native
			}
		}
	}
}
studios (isMain: true) {
	nodes {
		name
	}
}
startDate {
	year
	month
	day
}
endDate {
	year
	month
	day
}
status
format
synonyms
siteUrl
episodes
duration
countryOfOrigin
externalLinks {
	url
}
averageScore
`

var searchByNameQuery = fmt.Sprintf(`
query ($query: String) {
	Page (page: 1, perPage: 30) {
		media (search: $query, type: ANIME) {
			%s
		}
	}
}
`, animeSubquery)

var searchByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Media (id: $id, type: ANIME) {
		%s
	}
}`, animeSubquery)
