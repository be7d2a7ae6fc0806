// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package search implements a thin client for a remote table-search
// service, a collaborator outside the parser's own scope, that returns
// JSON hits folded into the shared table.Table shape.
package search
