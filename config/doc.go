/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads mapper rules and logging settings for kerrors
// consumers. Files are read through viper, so YAML, JSON and TOML all
// work, and every key can be overridden from the environment under the
// KERRORS_ prefix (log.level becomes KERRORS_LOG_LEVEL).
package config
