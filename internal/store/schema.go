package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshot (
    key       TEXT PRIMARY KEY,
    value     BLOB NOT NULL,
    saved_at  TEXT NOT NULL
);
`

// snapshotKey is the single row the whole persisted state lives under, the
// same key the original web app used in browser storage.
const snapshotKey = "amar_khata_data"
