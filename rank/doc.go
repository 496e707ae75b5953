// Package rank scores sections against a persona query by embedding
// similarity.
//
// An [Embedder] converts text to fixed-size vectors. The [HTTPEmbedder]
// implementation speaks the OpenAI /v1/embeddings wire format, which
// covers vLLM, Ollama, ONNX runtime servers, and OpenAI itself; the
// model is frozen and identified by name, never trained or tuned here.
//
// The [Ranker] embeds every section and the query in one batch, scores
// each section by cosine similarity, and returns the top-K sections in
// stable descending score order.
package rank
