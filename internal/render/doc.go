// Package render assembles blog pages from templates.
//
// Templates carry %%-delimited tokens that are replaced with blog settings
// and page values:
//
//	%%TINY_BLOG_NAME%%     blog name
//	%%TINY_BLOG_AUTHOR%%   blog author
//	%%TINY_INCLUDES%%      stylesheet <link> markup
//	%%TINY_LIFE%%          copyright years, "2020" or "2020-2024"
//	%%TINY_POST_TITLE%%    post pages: title
//	%%TINY_POST_SUBTITLE%% post pages: subtitle
//	%%TINY_POST_DATE%%     post pages: HTTP date
//	%%TINY_POST_CONTENT%%  post pages: rendered Markdown
//
// One region per page may be repeated for every post:
//
//	%%TINY_ITER_BEGIN%%
//	  <a href="%%TINY_ITER_HREF%%">%%TINY_ITER_TITLE%%</a> %%TINY_ITER_DATE%%
//	%%TINY_ITER_END%%
//
// The region is rendered most recent post first.
//
// Substitution is a single pass over the template. Replacement values are
// written as-is and never scanned again, so a post title that happens to
// contain "%%TINY_BLOG_NAME%%" stays literally in the output.
package render
