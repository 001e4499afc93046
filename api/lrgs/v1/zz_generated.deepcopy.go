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
func (in *LrgsClusterSpec) DeepCopyInto(out *LrgsClusterSpec) {
	*out = *in
	if in.ArchiveLengthDays != nil {
		in, out := &in.ArchiveLengthDays, &out.ArchiveLengthDays
		*out = new(int32)
		**out = **in
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new LrgsClusterSpec.
func (in *LrgsClusterSpec) DeepCopy() *LrgsClusterSpec {
	if in == nil {
		return nil
	}
	out := new(LrgsClusterSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *LrgsClusterStatus) DeepCopyInto(out *LrgsClusterStatus) {
	*out = *in
	if in.LastUpdated != nil {
		in, out := &in.LastUpdated, &out.LastUpdated
		*out = (*in).DeepCopy()
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new LrgsClusterStatus.
func (in *LrgsClusterStatus) DeepCopy() *LrgsClusterStatus {
	if in == nil {
		return nil
	}
	out := new(LrgsClusterStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *LrgsCluster) DeepCopyInto(out *LrgsCluster) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
	in.Status.DeepCopyInto(&out.Status)
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new LrgsCluster.
func (in *LrgsCluster) DeepCopy() *LrgsCluster {
	if in == nil {
		return nil
	}
	out := new(LrgsCluster)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject is a deepcopy function, copying the receiver, creating a new runtime.Object.
func (in *LrgsCluster) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *LrgsClusterList) DeepCopyInto(out *LrgsClusterList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		in, out := &in.Items, &out.Items
		*out = make([]LrgsCluster, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new LrgsClusterList.
func (in *LrgsClusterList) DeepCopy() *LrgsClusterList {
	if in == nil {
		return nil
	}
	out := new(LrgsClusterList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject is a deepcopy function, copying the receiver, creating a new runtime.Object.
func (in *LrgsClusterList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *DdsConnectionSpec) DeepCopyInto(out *DdsConnectionSpec) {
	*out = *in
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new DdsConnectionSpec.
func (in *DdsConnectionSpec) DeepCopy() *DdsConnectionSpec {
	if in == nil {
		return nil
	}
	out := new(DdsConnectionSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *DdsConnectionStatus) DeepCopyInto(out *DdsConnectionStatus) {
	*out = *in
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new DdsConnectionStatus.
func (in *DdsConnectionStatus) DeepCopy() *DdsConnectionStatus {
	if in == nil {
		return nil
	}
	out := new(DdsConnectionStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *DdsConnection) DeepCopyInto(out *DdsConnection) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = in.Spec
	out.Status = in.Status
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new DdsConnection.
func (in *DdsConnection) DeepCopy() *DdsConnection {
	if in == nil {
		return nil
	}
	out := new(DdsConnection)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject is a deepcopy function, copying the receiver, creating a new runtime.Object.
func (in *DdsConnection) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *DdsConnectionList) DeepCopyInto(out *DdsConnectionList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		in, out := &in.Items, &out.Items
		*out = make([]DdsConnection, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new DdsConnectionList.
func (in *DdsConnectionList) DeepCopy() *DdsConnectionList {
	if in == nil {
		return nil
	}
	out := new(DdsConnectionList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject is a deepcopy function, copying the receiver, creating a new runtime.Object.
func (in *DdsConnectionList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *DrgsConnectionSpec) DeepCopyInto(out *DrgsConnectionSpec) {
	*out = *in
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new DrgsConnectionSpec.
func (in *DrgsConnectionSpec) DeepCopy() *DrgsConnectionSpec {
	if in == nil {
		return nil
	}
	out := new(DrgsConnectionSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *DrgsConnectionStatus) DeepCopyInto(out *DrgsConnectionStatus) {
	*out = *in
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new DrgsConnectionStatus.
func (in *DrgsConnectionStatus) DeepCopy() *DrgsConnectionStatus {
	if in == nil {
		return nil
	}
	out := new(DrgsConnectionStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *DrgsConnection) DeepCopyInto(out *DrgsConnection) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = in.Spec
	out.Status = in.Status
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new DrgsConnection.
func (in *DrgsConnection) DeepCopy() *DrgsConnection {
	if in == nil {
		return nil
	}
	out := new(DrgsConnection)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject is a deepcopy function, copying the receiver, creating a new runtime.Object.
func (in *DrgsConnection) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *DrgsConnectionList) DeepCopyInto(out *DrgsConnectionList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		in, out := &in.Items, &out.Items
		*out = make([]DrgsConnection, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new DrgsConnectionList.
func (in *DrgsConnectionList) DeepCopy() *DrgsConnectionList {
	if in == nil {
		return nil
	}
	out := new(DrgsConnectionList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject is a deepcopy function, copying the receiver, creating a new runtime.Object.
func (in *DrgsConnectionList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}
