// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package openai implements the ai.AIProvider interface against
// OpenAI-compatible APIs via langchaingo. Any service speaking the OpenAI
// wire format works, including local runtimes such as Ollama, LocalAI, and
// vLLM.
//
// # Usage
//
//	config := ai.DefaultConfig()
//	// Or customize:
//	config := &ai.Config{
//	    EmbeddingHost:   "http://localhost:11434",  // /v1 added automatically
//	    ClassifierHost:  "http://localhost:11434",
//	    EmbeddingModel:  "embeddinggemma",
//	    ClassifierModel: "qwen2.5:3b",
//	}
//
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	// Use the services
//	vec, err := provider.Embedder().EmbedText(ctx, "sample text")
//	sentiment, err := provider.SentimentClassifier().ClassifySentiment(ctx, "my machine broke")
//	intents, err := provider.IntentClassifier().ClassifyIntent(ctx, "which grinder should i buy", ai.DefaultIntentLabels)
package openai
