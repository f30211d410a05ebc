// Package boxscore reads play-by-play tables from saved box-score HTML pages.
//
// Rows are flattened to whitespace-normalized text, the form the row classifier
// and turnover extractor work on. Tables hidden inside HTML comments are found
// and parsed as well.
package boxscore
