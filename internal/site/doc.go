// Package site renders provider recipes into the static getapi website.
//
// A build runs a fixed sequence of named stages (see StageName). Output is
// written to a sibling staging directory and promoted over the previous site
// only when every stage succeeded; with atomic mode disabled the output
// directory is reset in place instead.
package site
