// Package crawl turns a site root into extracted pages.
//
// Discovery walks the site's sitemaps: the robots.txt Sitemap directive plus
// the conventional /sitemap.xml path, expanding nested sitemap indices one
// level deep. Candidate addresses are filtered to content pages,
// de-duplicated, and capped in discovery order. Extraction then fans out
// over an ants worker pool, one task per page, and joins before returning;
// individual page failures are dropped rather than failing the batch.
package crawl
