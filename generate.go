//go:generate gomarkdoc -e -f github -o docs/reference.md . --repository.url https://github.com/KaminaDuck/hd2-tracker --repository.default-branch main --repository.path /

package tracker
