// Package services contains clients for the external completion
// endpoint that powers discovery.
//
// [Completer] is the transport abstraction: one request, one assembled
// response. [CompletionService] implements it against an Anthropic-style
// messages API with API-key authentication, request-id correlation, and
// client-side rate limiting. [PredictionService] layers the short
// suggestion flow on top of any Completer.
//
// Failure taxonomy: transport problems surface as [shared.ErrNetwork];
// model output that does not match the expected shape surfaces as
// [shared.ErrParse]. Neither is fatal; callers degrade per the policy
// in their own layer.
package services
