// Package estimate provides SizeEstimator implementations for the
// automatic transform search in package dxt.
//
// All three estimators are deterministic: the same input always yields
// the same size, so searches with them are reproducible. They differ in
// where they spend their time. Zstd runs a real zstd encode and reports
// the exact compressed size. Huff0 prices each chunk with an order-0
// Huffman table, the cheapest useful signal. Flate runs Huffman-only
// deflate, between the two in both cost and fidelity.
//
// Estimators are safe for concurrent use; each keeps a pool of encoder
// state, so a single instance can serve every search in a process.
package estimate

// chunkSize bounds the input handed to a single entropy-coding table. It
// stays well under huff0.BlockSizeMax, and a table per 64 KiB keeps the
// estimate sensitive to the region boundaries transformed data has.
const chunkSize = 64 << 10
