/*
Package frame provides a small labeled table used to move query results into the analysis
and plotting helpers: named columns, an optional time index, row filtering, numeric column
arithmetic and deep copies.
*/
package frame
