// Package strsplit prepares lines of Japanese (and mixed-script) text for
// downstream indexing: it strips unwanted markup, normalizes, tokenizes with
// a morphological analyzer and optionally rewrites each token.
//
// # Quick Start
//
//	sp, err := strsplit.New(strsplit.WithBaseForm(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sp.Close()
//
//	out, err := sp.Process(ctx, "すもももももももものうち")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // すもも も もも も もも の うち
//
// # Chunking
//
// The analyzer accepts a bounded number of bytes per call. Longer lines are
// cut into chunks no larger than the configured limit (WithChunkLimit),
// preferring to end a chunk just before punctuation or whitespace and never
// splitting a UTF-8 character. See package segment.
//
// # Thread Safety
//
// Splitter is safe for concurrent use. It manages an internal pool of
// analyzer sessions, configurable via WithPoolSize.
package strsplit
