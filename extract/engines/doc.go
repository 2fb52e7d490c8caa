// Package engines provides the default extraction engine implementations
// behind the extract.Toolkit interfaces.
//
// Web fetching and page titles use goquery over net/http. Document loading
// uses langchaingo document loaders; PDF extraction carries two engine
// generations for the rich/legacy fallback tiers. Image captioning talks to
// a vision-capable chat model through langchaingo multimodal messages, and
// the content filter delegates to an ai.LanguageModel. Speech-to-text and
// YouTube transcript retrieval have no local engine and report themselves
// as not configured.
package engines
