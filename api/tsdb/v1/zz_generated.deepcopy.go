//go:build !ignore_autogenerated

/*
Copyright 2024.

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

// Code generated by hand in lieu of controller-gen. DO NOT EDIT lightly.

package v1

import (
	runtime "k8s.io/apimachinery/pkg/runtime"
)

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *OpenDcsDatabaseSpec) DeepCopyInto(out *OpenDcsDatabaseSpec) {
	*out = *in
	if in.Placeholders != nil {
		in, out := &in.Placeholders, &out.Placeholders
		*out = make(map[string]string, len(*in))
		for key, val := range *in {
			(*out)[key] = val
		}
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new OpenDcsDatabaseSpec.
func (in *OpenDcsDatabaseSpec) DeepCopy() *OpenDcsDatabaseSpec {
	if in == nil {
		return nil
	}
	out := new(OpenDcsDatabaseSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *OpenDcsDatabaseStatus) DeepCopyInto(out *OpenDcsDatabaseStatus) {
	*out = *in
	if in.LastUpdated != nil {
		in, out := &in.LastUpdated, &out.LastUpdated
		*out = (*in).DeepCopy()
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new OpenDcsDatabaseStatus.
func (in *OpenDcsDatabaseStatus) DeepCopy() *OpenDcsDatabaseStatus {
	if in == nil {
		return nil
	}
	out := new(OpenDcsDatabaseStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *OpenDcsDatabase) DeepCopyInto(out *OpenDcsDatabase) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
	in.Status.DeepCopyInto(&out.Status)
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new OpenDcsDatabase.
func (in *OpenDcsDatabase) DeepCopy() *OpenDcsDatabase {
	if in == nil {
		return nil
	}
	out := new(OpenDcsDatabase)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject is a deepcopy function, copying the receiver, creating a new runtime.Object.
func (in *OpenDcsDatabase) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *OpenDcsDatabaseList) DeepCopyInto(out *OpenDcsDatabaseList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		in, out := &in.Items, &out.Items
		*out = make([]OpenDcsDatabase, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new OpenDcsDatabaseList.
func (in *OpenDcsDatabaseList) DeepCopy() *OpenDcsDatabaseList {
	if in == nil {
		return nil
	}
	out := new(OpenDcsDatabaseList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject is a deepcopy function, copying the receiver, creating a new runtime.Object.
func (in *OpenDcsDatabaseList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}
