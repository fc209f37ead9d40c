// Package backup exports the whole media library database and restores it.
//
// Two artifacts are produced:
//   - a SQL script in the dialect of the connected database, one statement per line,
//     which deletes all rows and inserts them again
//   - a JSON snapshot document with a metadata envelope, where user credentials are redacted
//
// Only the snapshot can be restored. The tables are processed in the order declared by
// Order: delete phases walk it backwards, insert phases forwards, so a row is never
// written before the rows it references. A restore runs in a single transaction and
// export reads run in a single read transaction.
package backup
